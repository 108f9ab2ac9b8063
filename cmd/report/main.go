package main

import (
	"context"
	"ecommerce-dashboard/internal/config"
	"ecommerce-dashboard/internal/model"
	"ecommerce-dashboard/internal/pipeline"
	"ecommerce-dashboard/internal/report"
	"ecommerce-dashboard/internal/source"
	"ecommerce-dashboard/pkg/utils"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

type options struct {
	Config string `short:"c" long:"config" description:"JSON config file" default:"config.json"`
	Kind   string `short:"k" long:"kind" description:"Report kind id or label"`
	Years  string `short:"y" long:"years" description:"Comma-separated purchase years, config defaults when empty"`
	JSON   bool   `long:"json" description:"Print the whole report as JSON instead of the conclusion"`
	OutDir string `short:"o" long:"out-dir" description:"Also write report.json and conclusion.md under this directory"`
	List   bool   `short:"l" long:"list" description:"List the report kinds and exit"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.List {
		for _, k := range report.Kinds() {
			fmt.Printf("%-20s %s\n", k, k.Label())
		}
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.Kind == "" {
		return fmt.Errorf("--kind is required, see --list")
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		return err
	}

	years := cfg.DefaultYears
	if opts.Years != "" {
		if years, err = utils.ParseYears(opts.Years); err != nil {
			return err
		}
	}

	table, err := source.Load(context.Background(), cfg)
	if err != nil {
		return err
	}

	rep, err := pipeline.Run(table, model.ReportRequest{Kind: opts.Kind, Years: years}, pipeline.Options{TopN: cfg.TopN})
	if err != nil {
		return err
	}
	rep.ID = uuid.New().String()

	body, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}

	if opts.OutDir != "" {
		om := utils.NewOutputManager(opts.OutDir)
		if _, err := om.WriteFile(rep.ID, "report.json", body); err != nil {
			return err
		}
		path, err := om.WriteFile(rep.ID, "conclusion.md", []byte("## "+rep.Title+"\n\n"+rep.Conclusion+"\n"))
		if err != nil {
			return err
		}
		log.Infof("📁 report %s written next to %s", rep.ID, path)
	}

	if opts.JSON {
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(rep.Conclusion)
	return nil
}
