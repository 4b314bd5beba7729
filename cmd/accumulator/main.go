package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/Layr-Labs/incremental-merkle-go/pkg/accumulator"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/config"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/logger"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/merkle"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/persistence"
	badgerstore "github.com/Layr-Labs/incremental-merkle-go/pkg/persistence/badger"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/persistence/memory"
	redisstore "github.com/Layr-Labs/incremental-merkle-go/pkg/persistence/redis"
)

func main() {
	app := &cli.App{
		Name:  "accumulator",
		Usage: "Append-only incremental merkle accumulator",
		Description: `Maintains a fixed-depth (32 level) append-only keccak256 merkle tree
using only O(depth) persisted state, and recomputes roots for inclusion
proofs against it.

The stored frontier is bit-exact with the on-chain accumulator contract,
so roots derived here match roots committed on chain.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "persistence",
				Aliases: []string{"s"},
				Value:   string(config.PersistenceTypeBadger),
				Usage:   fmt.Sprintf("Storage backend: %s", config.GetSupportedPersistenceTypesString()),
				EnvVars: []string{config.EnvIMTPersistence},
			},
			&cli.StringFlag{
				Name:    "data-path",
				Aliases: []string{"d"},
				Value:   "./imt-data",
				Usage:   "Badger database directory (badger backend)",
				EnvVars: []string{config.EnvIMTDataPath},
			},
			&cli.StringFlag{
				Name:    "redis-address",
				Usage:   "Redis server address host:port (redis backend)",
				EnvVars: []string{config.EnvIMTRedisAddress},
			},
			&cli.StringFlag{
				Name:    "redis-password",
				Usage:   "Redis password (redis backend)",
				EnvVars: []string{config.EnvIMTRedisPassword},
			},
			&cli.IntFlag{
				Name:    "redis-db",
				Usage:   "Redis database number (redis backend)",
				EnvVars: []string{config.EnvIMTRedisDB},
			},
			&cli.StringFlag{
				Name:    "key-prefix",
				Usage:   "Prefix for the stored record key (multi-tenant setups)",
				EnvVars: []string{config.EnvIMTKeyPrefix},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
				EnvVars: []string{config.EnvIMTVerbose},
			},
		},
		Commands: []*cli.Command{
			insertCommand(),
			rootCommand(),
			proofRootCommand(),
			zeroHashesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// configFromFlags assembles and validates the backend configuration
func configFromFlags(c *cli.Context) (*config.Config, error) {
	cfg := &config.Config{
		PersistenceType: config.PersistenceType(c.String("persistence")),
		DataPath:        c.String("data-path"),
		RedisAddress:    c.String("redis-address"),
		RedisPassword:   c.String("redis-password"),
		RedisDB:         c.Int("redis-db"),
		KeyPrefix:       c.String("key-prefix"),
		Verbose:         c.Bool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildService constructs the service plus the backend that the caller must
// close when done
func buildService(c *cli.Context) (*accumulator.Service, persistence.ITreePersistence, error) {
	cfg, err := configFromFlags(c)
	if err != nil {
		return nil, nil, err
	}

	lg, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Verbose})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	var store persistence.ITreePersistence
	switch cfg.PersistenceType {
	case config.PersistenceTypeMemory:
		store = memory.NewMemoryPersistence()
	case config.PersistenceTypeBadger:
		store, err = badgerstore.NewBadgerPersistence(cfg.DataPath, lg)
	case config.PersistenceTypeRedis:
		store, err = redisstore.NewRedisPersistence(&redisstore.RedisConfig{
			Address:   cfg.RedisAddress,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
		}, lg)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s persistence: %w", cfg.PersistenceType, err)
	}

	return accumulator.NewService(store, lg), store, nil
}

// parseHash32 decodes a 0x-prefixed 32-byte hex value
func parseHash32(s string) ([32]byte, error) {
	var out [32]byte
	data, err := hexutil.Decode(s)
	if err != nil {
		return out, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	if len(data) != 32 {
		return out, fmt.Errorf("invalid hash %q: got %d bytes, want 32", s, len(data))
	}
	copy(out[:], data)
	return out, nil
}

func insertCommand() *cli.Command {
	return &cli.Command{
		Name:      "insert",
		Usage:     "Insert one or more 32-byte leaves into the tree",
		ArgsUsage: "LEAF_HEX [LEAF_HEX ...]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("at least one leaf is required")
			}

			leaves := make([][32]byte, c.NArg())
			for i := 0; i < c.NArg(); i++ {
				leaf, err := parseHash32(c.Args().Get(i))
				if err != nil {
					return err
				}
				leaves[i] = leaf
			}

			svc, store, err := buildService(c)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var tree *merkle.Tree
			for _, leaf := range leaves {
				tree, err = svc.Insert(leaf)
				if err != nil {
					return err
				}
			}

			root, err := tree.Root()
			if err != nil {
				return err
			}

			fmt.Printf("count: %d\n", tree.Count)
			fmt.Printf("root:  %s\n", common.Hash(root).Hex())
			return nil
		},
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:  "root",
		Usage: "Print the current root of the stored tree",
		Action: func(c *cli.Context) error {
			svc, store, err := buildService(c)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			root, err := svc.GetRoot()
			if err != nil {
				return err
			}

			fmt.Println(common.Hash(root).Hex())
			return nil
		},
	}
}

func proofRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "proof-root",
		Usage: "Recompute a root from a leaf, its sibling path, and its index (no stored state)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "leaf",
				Usage:    "32-byte leaf hash (hex)",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "index",
				Usage:    "Leaf index in the tree",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "sibling",
				Usage: "Sibling hash (hex), repeated leaf-level first; missing levels are zero-padded",
			},
		},
		Action: func(c *cli.Context) error {
			leaf, err := parseHash32(c.String("leaf"))
			if err != nil {
				return err
			}

			siblingArgs := c.StringSlice("sibling")
			if len(siblingArgs) > merkle.TreeDepth {
				return fmt.Errorf("too many siblings: got %d, max %d", len(siblingArgs), merkle.TreeDepth)
			}
			siblings := make([][32]byte, len(siblingArgs))
			for i, s := range siblingArgs {
				siblings[i], err = parseHash32(s)
				if err != nil {
					return err
				}
			}

			root := merkle.BranchRoot(leaf, siblings, c.Uint64("index"))
			fmt.Println(common.Hash(root).Hex())
			return nil
		},
	}
}

func zeroHashesCommand() *cli.Command {
	return &cli.Command{
		Name:  "zero-hashes",
		Usage: "Print the empty-subtree hash for every tree level",
		Action: func(c *cli.Context) error {
			for i, z := range merkle.ZeroHashes() {
				fmt.Printf("%2d %s\n", i, common.Hash(z).Hex())
			}
			return nil
		},
	}
}
