package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trainings-module/config"
	"trainings-module/listing"
	"trainings-module/services"
	"trainings-module/storage"
	"trainings-module/store"
	"trainings-module/utils"
)

var (
	dataDir    string
	category   string
	status     string
	jsonOutput bool

	trainings *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "trainctl",
	Short: "Admin CLI for the training listings store",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		if dataDir == "" {
			dataDir = config.AppConfig.DataDir
		}
		slot, err := storage.NewFileSlot(dataDir)
		if err != nil {
			return err
		}
		trainings = store.New(slot)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List trainings, optionally filtered by category or status",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := trainings.All()
		if err != nil {
			return err
		}

		criteria := listing.Criteria{Status: status}
		if category != "" {
			criteria.Categories = []string{category}
		}
		filtered := listing.Filter(records, criteria, listing.AdminView)

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(utils.ConvertTrainingsToResponse(filtered))
		}

		for _, t := range filtered {
			fmt.Printf("%-14d %-10s %-45s NGN %-8d %s\n", t.ID, t.Status, t.Title, t.Price, t.Provider)
		}
		fmt.Printf("%d trainings\n", len(filtered))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export the full collection to an Excel workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := trainings.All()
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		if err := services.WriteTrainingsExcel(f, records); err != nil {
			return err
		}
		fmt.Printf("Exported %d trainings to %s\n", len(records), args[0])
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the collection slot to the seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := storage.NewFileSlot(dataDir)
		if err != nil {
			return err
		}
		data, err := json.Marshal(store.SeedTrainings())
		if err != nil {
			return err
		}
		if err := slot.Write(utils.TrainingsSlot, data); err != nil {
			return err
		}
		fmt.Println("Collection reset to seed data")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (defaults to DATA_DIR)")
	listCmd.Flags().StringVar(&category, "category", "", "filter by category")
	listCmd.Flags().StringVar(&status, "status", "", "filter by status")
	listCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
