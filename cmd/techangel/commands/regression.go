package commands

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"techangel/internal/chart"
	"techangel/internal/domain"
	"techangel/internal/services/regression"
	"techangel/internal/store"
	"techangel/internal/tui"
)

// pickSeed prefers the flag, then the config, then a random seed.
func pickSeed(flag uint64) uint64 {
	if flag != 0 {
		return flag
	}
	if wire.Config.Seed != 0 {
		return wire.Config.Seed
	}
	return rand.Uint64()
}

func regressionCmd() *cobra.Command {
	var (
		model   string
		seed    uint64
		details bool
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "regression",
		Short: "Evaluate a regression model against a synthetic salary dataset",
		Long: "Evaluate one of the fixed regression curves (linear, polynomial,\n" +
			"decision_tree, neural_network) against 21 noisy salary samples.\n" +
			"The same --seed always gives the same dataset.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := pickSeed(seed)
			if all {
				return printAllModels(cmd, s)
			}

			res, err := api.Predict(ctx, domain.ModelName(model), s)
			if err != nil {
				return err
			}
			models, err := api.Models(ctx)
			if err != nil {
				return err
			}
			info := findModel(models, res.Model)

			payload := struct {
				domain.PredictResponse
				Info *domain.ModelInfo `json:"info,omitempty"`
			}{PredictResponse: res}
			if details {
				payload.Info = &info
			}

			return emit(cmd.OutOrStdout(), payload, func(w io.Writer) {
				fmt.Fprintln(w, predictionsTable(res.Predictions))
				fmt.Fprintf(w, "model %s  seed %d  MAE $%.0f  RMSE $%.0f  R² %.3f\n",
					res.Model, res.Seed, res.Score.MAE, res.Score.RMSE, res.Score.R2)
				md := tui.Markdown(info, details)
				if out, err := tui.RenderMarkdown(md, ""); err == nil {
					md = out
				}
				fmt.Fprint(w, md)
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&model, "model", "m", string(domain.ModelLinear), "model: linear, polynomial, decision_tree, neural_network")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "dataset seed (0: config seed or random)")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "include the long description, pros and cons")
	cmd.Flags().BoolVar(&all, "all", false, "score every model against the same dataset")

	cmd.AddCommand(exportCmd(&model, &seed))
	return cmd
}

func printAllModels(cmd *cobra.Command, seed uint64) error {
	ctx := cmd.Context()
	models, err := api.Models(ctx)
	if err != nil {
		return err
	}
	results := make([]domain.PredictResponse, 0, len(models))
	for _, m := range models {
		res, err := api.Predict(ctx, m.Name, seed)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	return emit(cmd.OutOrStdout(), results, func(w io.Writer) {
		tbl := table.New().Border(lipgloss.NormalBorder()).Headers("Model", "MAE", "RMSE", "R²")
		for _, r := range results {
			tbl.Row(string(r.Model), fmt.Sprintf("$%.0f", r.Score.MAE), fmt.Sprintf("$%.0f", r.Score.RMSE), fmt.Sprintf("%.3f", r.Score.R2))
		}
		fmt.Fprintln(w, tbl.String())
		fmt.Fprintf(w, "seed %d\n", seed)
	})
}

func predictionsTable(preds []domain.Prediction) string {
	tbl := table.New().Border(lipgloss.NormalBorder()).Headers("Years", "Actual", "Predicted")
	for _, p := range preds {
		tbl.Row(fmt.Sprint(p.Experience), fmt.Sprintf("$%.0f", p.Actual), fmt.Sprintf("$%.0f", p.Predicted))
	}
	return tbl.String()
}

func findModel(models []domain.ModelInfo, name domain.ModelName) domain.ModelInfo {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	return domain.ModelInfo{Name: name, Title: string(name)}
}

func exportCmd(model *string, seed *uint64) *cobra.Command {
	var (
		out, chartPath string
		force          bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset, every model's curve and the scores to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !force && store.Exists(out) {
				return fmt.Errorf("%s already exists (use --force to replace it)", out)
			}
			selected, err := regression.ParseModel(*model)
			if err != nil {
				return err
			}
			models, err := api.Models(ctx)
			if err != nil {
				return err
			}

			s := pickSeed(*seed)
			exp := store.Export{
				Seed:        s,
				Selected:    selected,
				Predictions: make(map[domain.ModelName][]domain.Prediction, len(models)),
			}
			curves := make([]chart.Curve, 0, len(models))
			for _, m := range models {
				res, err := api.Predict(ctx, m.Name, s)
				if err != nil {
					return err
				}
				exp.Predictions[m.Name] = res.Predictions
				exp.Scores = append(exp.Scores, res.Score)
				curves = append(curves, chart.Curve{Model: m.Name, Label: m.Title, Points: res.Predictions})
				if exp.Samples == nil {
					exp.Samples = samplesOf(res.Predictions)
				}
			}

			if err := store.SaveExport(out, exp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (seed %d)\n", out, s)

			if chartPath == "" {
				return nil
			}
			format, err := chart.ParseFormat(filepath.Ext(chartPath))
			if err != nil {
				return err
			}
			buf := new(bytes.Buffer)
			opts := chart.Options{
				Width:  wire.Config.Chart.Width,
				Height: wire.Config.Chart.Height,
				Title:  "Salary vs experience",
			}
			if err := chart.Render(buf, format, exp.Samples, curves, opts); err != nil {
				return err
			}
			if err := store.SaveChart(chartPath, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", chartPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "JSON output file")
	cmd.Flags().StringVar(&chartPath, "chart", "", "also render a chart (.png or .svg)")
	cmd.Flags().BoolVar(&force, "force", false, "replace existing files")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func samplesOf(preds []domain.Prediction) []domain.Sample {
	out := make([]domain.Sample, len(preds))
	for i, p := range preds {
		out[i] = domain.Sample{Experience: p.Experience, Actual: p.Actual}
	}
	return out
}
