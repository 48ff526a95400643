package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/algoprose/classics/kmeans"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	kmeansK    int
	kmeansCSV  string
	kmeansSeed int64
)

var kmeansCmd = &cobra.Command{
	Use:   "kmeans",
	Short: "Cluster CSV points with k-means++",
	Long: `Reads numeric rows from a CSV file (one point per row, one coordinate
per column), clusters them into --k groups and prints the centroids,
cluster sizes and inertia.

Example:
  classics kmeans --k 3 --csv iris.csv`,
	RunE: runKmeans,
}

func init() {
	kmeansCmd.Flags().IntVar(&kmeansK, "k", 2, "number of clusters")
	kmeansCmd.Flags().StringVar(&kmeansCSV, "csv", "", "CSV file of points (required)")
	kmeansCmd.Flags().Int64Var(&kmeansSeed, "seed", 0, "RNG seed, 0 for the fixed default")
	_ = kmeansCmd.MarkFlagRequired("csv")
}

func runKmeans(cmd *cobra.Command, args []string) error {
	points, err := readPoints(kmeansCSV)
	if err != nil {
		return err
	}
	logger.Debug("kmeans input", zap.Int("points", len(points)), zap.Int("k", kmeansK))

	opts := kmeans.DefaultOptions()
	opts.Seed = kmeansSeed
	res, err := kmeans.Cluster(points, kmeansK, opts)
	if err != nil {
		return err
	}

	sizes := make([]int, kmeansK)
	for _, l := range res.Labels {
		sizes[l]++
	}
	for c, centroid := range res.Centroids {
		coords := make([]string, len(centroid))
		for d, v := range centroid {
			coords[d] = strconv.FormatFloat(v, 'g', 6, 64)
		}
		fmt.Printf("cluster %d: %d points, centroid (%s)\n", c, sizes[c], strings.Join(coords, ", "))
	}
	fmt.Printf("inertia %.6g after %d iterations (converged=%v)\n",
		res.Inertia, res.Iterations, res.Converged)

	return nil
}

// readPoints parses every CSV record as one float64 vector.
func readPoints(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	points := make([][]float64, 0, len(records))
	for i, rec := range records {
		p := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %d: %w", path, i+1, j+1, err)
			}
			p[j] = v
		}
		points = append(points, p)
	}

	return points, nil
}
