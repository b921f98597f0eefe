package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/paywallkit/offertext/internal/api"
	"github.com/paywallkit/offertext/internal/config"
	"github.com/paywallkit/offertext/internal/domain"
	"github.com/paywallkit/offertext/internal/export"
	"github.com/paywallkit/offertext/internal/placeholder"
)

func main() {
	app := &cli.App{
		Name:  "offertext",
		Usage: "derive per-period prices and placeholder sets for paywall offers",
		Commands: []*cli.Command{
			serveCommand(),
			renderCommand(),
			exportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the placeholder preview HTTP API",
		Action: func(c *cli.Context) error {
			cfg := config.Load()

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(cfg.HTTPPort)

			errCh := make(chan error, 1)
			go func() {
				slog.Info("HTTP server listening", "port", cfg.HTTPPort)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "print the placeholder set of each offer as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "offers",
				Usage:    "path to a JSON file with an array of product offers",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			offers, err := loadOffers(c.String("offers"))
			if err != nil {
				return err
			}

			sets := lo.Map(offers, func(offer domain.ProductOffer, _ int) []placeholder.Token {
				return placeholder.Build(offer)
			})

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sets)
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write a placeholder preview workbook for a set of offers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "offers",
				Usage:    "path to a JSON file with an array of product offers",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Value: "placeholders.xlsx",
				Usage: "output workbook path",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()

			offers, err := loadOffers(c.String("offers"))
			if err != nil {
				return err
			}

			writer := export.NewWorkbookWriter(c.String("out"), cfg.ExportSheetName)
			if err := writer.Write(export.BuildRows(offers)); err != nil {
				return err
			}

			slog.Info("preview workbook written", "path", c.String("out"), "offers", len(offers))
			return nil
		},
	}
}

func loadOffers(path string) ([]domain.ProductOffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading offers file: %w", err)
	}
	var offers []domain.ProductOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, fmt.Errorf("parsing offers file: %w", err)
	}
	return offers, nil
}
