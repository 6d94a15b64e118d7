/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/csbot-be/config"
	"github.com/tieubaoca/csbot-be/database"
	"github.com/tieubaoca/csbot-be/repository"
	"github.com/tieubaoca/csbot-be/service"
)

// ingestCmd loads knowledge into the database without running the server.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Add knowledge base entries from the command line",
	Long: `Adds knowledge base entries from a URL, local text files or a manual
title/content pair. For example:

  csbot-be ingest --url https://example.com/faq
  csbot-be ingest --file opening-hours.txt --file returns-policy.txt
  csbot-be ingest --title "Shipping" --content "We ship within 3 days."`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		url, _ := cmd.Flags().GetString("url")
		files, _ := cmd.Flags().GetStringArray("file")
		title, _ := cmd.Flags().GetString("title")
		content, _ := cmd.Flags().GetString("content")

		if url == "" && len(files) == 0 && (title == "" || content == "") {
			log.Fatal("Provide --url, --file or both --title and --content")
		}

		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		db, err := database.Open(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}()

		scraperService := service.NewScraperService(cfg.FetchTimeout())
		knowledgeService := service.NewKnowledgeService(repository.NewKnowledgeRepo(db), scraperService)
		ctx := cmd.Context()

		if url != "" {
			entry, err := knowledgeService.IngestURL(ctx, url)
			if err != nil {
				log.Fatalf("Failed to ingest %s: %v", url, err)
			}
			fmt.Printf("Ingested %q (id %d) from %s\n", entry.Title, entry.ID, url)
		}

		for _, file := range files {
			entry, err := knowledgeService.IngestFile(ctx, file)
			if err != nil {
				log.Fatalf("Failed to ingest %s: %v", file, err)
			}
			fmt.Printf("Ingested %q (id %d) from %s\n", entry.Title, entry.ID, file)
		}

		if title != "" && content != "" {
			entry, err := knowledgeService.IngestManual(ctx, title, content)
			if err != nil {
				log.Fatalf("Failed to ingest manual entry: %v", err)
			}
			fmt.Printf("Ingested %q (id %d)\n", entry.Title, entry.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	ingestCmd.Flags().String("url", "", "URL to scrape into the knowledge base")
	ingestCmd.Flags().StringArray("file", nil, "text file to upload (repeatable)")
	ingestCmd.Flags().String("title", "", "title for a manual entry")
	ingestCmd.Flags().String("content", "", "content for a manual entry")
}
