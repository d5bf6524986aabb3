package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// galleryTimeLayouts mirrors what gallery feeds publish in their free-form
// time field.
var galleryTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func humanFeedTime(s string) string {
	for _, layout := range galleryTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return humanize.Time(t)
		}
	}
	return s
}

func newGalleryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "List gallery workflows",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := api.FetchGallery(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch gallery: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No gallery workflows available.")
				return nil
			}

			fmt.Printf("%-40s  %-20s  %s\n", "TITLE", "AUTHOR", "PUBLISHED")
			fmt.Printf("%-40s  %-20s  %s\n", "-----", "------", "---------")
			for _, e := range entries {
				published := ""
				if e.Meta.Time != "" {
					published = humanFeedTime(e.Meta.Time)
				}
				fmt.Printf("%-40s  %-20s  %s\n", e.Meta.Title, e.Meta.Author, published)
			}
			return nil
		},
	}
}
