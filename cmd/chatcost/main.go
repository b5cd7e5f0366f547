package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "chatcost",
		Short:   "chatcost — monthly cost projection for public-sector chatbot deployments",
		Version: version,
	}

	root.AddCommand(
		newEstimateCmd(),
		newTableCmd(),
		newExportCmd(),
		newModelsCmd(),
		newSnapshotCmd(),
		newServeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
