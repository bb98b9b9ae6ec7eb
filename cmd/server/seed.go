package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/postgres"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML document accepted by the seed command.
type seedFile struct {
	Texts []seedText `yaml:"texts"`
}

type seedText struct {
	Content    string `yaml:"content"`
	Difficulty string `yaml:"difficulty"`
	Category   string `yaml:"category"`
}

// textCreator is the part of service.ReadingTextService used for seeding.
type textCreator interface {
	CreateText(ctx context.Context, in service.CreateTextInput) (domain.ReadingText, error)
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reading texts from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer f.Close()

			texts, err := parseSeed(f)
			if err != nil {
				return err
			}

			cfg, log, err := loadConfig(opts)
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pool.Close()

			svc, err := service.NewReadingTextService(postgres.NewPostgresReadingTextStore(pool, log), log)
			if err != nil {
				return err
			}
			n, err := seedTexts(cmd.Context(), svc, texts, log)
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d of %d reading texts\n", n, len(texts))
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "texts.yaml", "YAML file with a top-level texts list")
	return cmd
}

// parseSeed decodes a seed document and rejects an empty text list.
func parseSeed(r io.Reader) ([]seedText, error) {
	var doc seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed file is empty")
		}
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(doc.Texts) == 0 {
		return nil, errors.New("seed file has no texts")
	}
	return doc.Texts, nil
}

// seedTexts creates each text in order and stops at the first failure. It
// returns how many texts were created.
func seedTexts(ctx context.Context, svc textCreator, texts []seedText, log *slog.Logger) (int, error) {
	for i, t := range texts {
		created, err := svc.CreateText(ctx, service.CreateTextInput{
			Content:    t.Content,
			Difficulty: t.Difficulty,
			Category:   t.Category,
		})
		if err != nil {
			return i, fmt.Errorf("seed text %d: %w", i+1, err)
		}
		log.Info("seeded reading text", slog.String("reading_text_id", created.ID()))
	}
	return len(texts), nil
}
