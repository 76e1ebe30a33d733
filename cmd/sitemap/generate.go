package main

import (
	"errors"
	"fmt"

	"stratigo-site/internal/bootstrap"
	"stratigo-site/internal/config"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/service"
	"stratigo-site/pkg/sitemap"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	outPath    string
	routesFile string
	siteURL    string
	dryRun     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sitemap.xml from the static routes and published blog posts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.CMS.ProjectID == "" {
			return errors.New("SANITY_PROJECT_ID is not set")
		}
		if siteURL == "" {
			siteURL = cfg.App.SiteURL
		}
		if routesFile == "" {
			routesFile = cfg.Sitemap.RoutesFile
		}
		if outPath == "" {
			outPath = cfg.Sitemap.OutputPath
		}

		log := logger.NewNopLogger()
		repo, err := bootstrap.NewContentRepository(cfg, nil, log)
		if err != nil {
			return err
		}

		pages, err := config.LoadSitemapPages(routesFile)
		if err != nil {
			return err
		}

		color.Cyan("Generating sitemap for %s", siteURL)
		svc := service.NewSitemapService(repo, sitemap.NewGenerator(siteURL, pages), log)

		if dryRun {
			out, count, err := svc.Generate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			color.Green("%d URLs", count)
			return nil
		}

		count, err := svc.WriteFile(cmd.Context(), outPath)
		if err != nil {
			return err
		}
		color.Green("Sitemap generated with %d URLs at %s", count, outPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default SITEMAP_OUTPUT_PATH)")
	generateCmd.Flags().StringVar(&routesFile, "routes", "", "YAML file with the static routes")
	generateCmd.Flags().StringVar(&siteURL, "site-url", "", "site origin (default SITE_URL)")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the sitemap instead of writing it")
	rootCmd.AddCommand(generateCmd)
}
