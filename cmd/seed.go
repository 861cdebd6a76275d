package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"realtors/internal/config"
	"realtors/internal/policy"
	"realtors/internal/realtor"
	"realtors/pkg/domain"
	"realtors/pkg/logger"
	"realtors/pkg/metrics"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ( //nolint: gochecknoglobals
	seedFirstNames = []string{
		"Ada", "Bruno", "Chloe", "Diego", "Elena", "Farid", "Grace", "Hugo", "Ines", "Jonas",
		"Keiko", "Liam", "Maya", "Nikos", "Olga", "Pavel", "Quinn", "Rosa", "Sami", "Tara",
	}
	seedLastNames = []string{
		"Alvarez", "Brennan", "Costa", "Dubois", "Eriksen", "Fischer", "Garcia", "Haddad",
		"Ivanova", "Jensen", "Kowalski", "Laine", "Moreau", "Nakamura", "Okafor", "Petrov",
	}
	seedPhoneFormats = []string{
		"(%03d) %03d-%04d",
		"+1 %03d-%03d-%04d",
		"%03d %03d %04d",
		"%03d-%03d-%04d",
	}
)

// seedSource yields the generator for names and phones, and an independent byte
// stream for user ids. Both derive from seed, so a seed reproduces a run.
func seedSource(seed uint64) (*rand.Rand, io.Reader) {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)

	return rand.New(rand.NewPCG(seed, seed>>1)), rand.NewChaCha8(key) //nolint: gosec
}

func seedIdentity(rng *rand.Rand, ids io.Reader, i int) (domain.Identity, error) {
	first := seedFirstNames[rng.IntN(len(seedFirstNames))]
	last := seedLastNames[rng.IntN(len(seedLastNames))]
	id, err := uuid.NewRandomFromReader(ids)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("could not generate user id: %w", err)
	}

	return domain.Identity{
		ID:    domain.UserID(id),
		Name:  first + " " + last,
		Email: fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
	}, nil
}

func seedPhone(rng *rand.Rand) string {
	format := seedPhoneFormats[rng.IntN(len(seedPhoneFormats))]

	return fmt.Sprintf(format, 200+rng.IntN(800), rng.IntN(1000), rng.IntN(10000))
}

// seedCommand constructs the 'seed' subcommand that creates sample users,
// each owning one realtor profile, through the regular profile lifecycle.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populates the directory with sample realtors",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			count, _ := cmd.Flags().GetInt("count")
			seed, _ := cmd.Flags().GetUint64("seed")
			if seed == 0 {
				seed = uint64(time.Now().UnixNano()) //nolint: gosec
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			m := metrics.New(prometheus.NewRegistry())
			c, closeCache := setupCache(ctx, cfg, m)
			defer closeCache()

			manager := realtor.New(realtor.Deps{
				Storage: strg,
				Cache:   c,
				Policy:  policy.NewDefault(policy.NewOptions(cfg)),
				Metrics: m,
			}, realtor.NewOptions(cfg))

			logger.Info(ctx, "seeding realtors", zap.Uint64("seed", seed), zap.Int("count", count))
			rng, ids := seedSource(seed)
			created := 0
			for i := range count {
				identity, err := seedIdentity(rng, ids, i)
				if err != nil {
					logger.Fatal(ctx, "could not generate seed identity", zap.Error(err))
				}
				id, err := manager.Create(ctx, &identity, domain.RealtorInput{Phone: seedPhone(rng)})
				if err != nil {
					logger.Error(ctx, "could not seed realtor", zap.String("email", identity.Email), zap.Error(err))

					continue
				}
				created++
				logger.Debug(ctx, "seeded realtor", zap.Int64("id", int64(id)), zap.String("email", identity.Email))
			}

			logger.Info(ctx, "seeding finished", zap.Int("created", created), zap.Int("requested", count))
		},
	}

	cmd.Flags().Int("count", 20, "Number of users (each with one profile) to create")
	cmd.Flags().Uint64("seed", 0, "Random seed; the same seed reproduces names, emails, phones and user ids (0 picks one)")

	return cmd
}
