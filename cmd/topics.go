package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankhbayar/mcqgen/internal/catalog"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Боломжит хичээл, сэдэв, дэд сэдвүүдийг хэвлэх",
	Run: func(cmd *cobra.Command, args []string) {
		for _, subject := range catalog.Subjects() {
			fmt.Println(headerStyle.Render(string(subject)))
			for _, topic := range catalog.Topics(subject) {
				fmt.Printf("  %s\n", questionStyle.Render(topic.Name))
				for _, sub := range topic.Subtopics {
					fmt.Printf("    - %s\n", sub)
				}
			}
			fmt.Println()
		}
	},
}
