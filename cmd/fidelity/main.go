package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"
	"github.com/oklog/run"
	"go.uber.org/dig"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/common"
	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/experiment"
	"github.com/oqtopus-team/oqtopus-fidelity/log"
	"github.com/oqtopus-team/oqtopus-fidelity/report"
	"github.com/oqtopus-team/oqtopus-fidelity/scheduler"
)

var versionByBuildFlag string
var parser *flags.Parser
var app *App

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	}
	app = &App{}
	setParser(app)
}

type App struct {
	Conf *core.Conf `group:"Engine Options"`
}

func setParser(app *App) {
	parser = flags.NewParser(app, flags.Default)
	parser.ShortDescription = "fidelity engine"
	parser.LongDescription = heredoc.Doc(`
		Sweeps noise and calibration parameters of simulated gates and
		reports average gate fidelities as JSON.
	`)
	for _, e := range experiment.All() {
		parser.AddCommand(e.Name(), e.Description(), e.Description(), &experimentCmd{names: []string{e.Name()}})
	}
	parser.AddCommand("all", "run every experiment",
		heredoc.Doc(`
			Queues every experiment and runs them one after another.
			The first failure stops the run.
		`),
		&experimentCmd{names: allNames()})
	parser.AddCommand("list", "list experiments", "Prints the name and description of every experiment.", &listCmd{out: os.Stdout})
}

func allNames() []string {
	var names []string
	for _, e := range experiment.All() {
		names = append(names, e.Name())
	}
	return names
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Fprintf(os.Stderr, "failed to run, because %s\n", err)
		}
		os.Exit(code)
	}
}

func main() {
	parse()
}

type experimentCmd struct {
	names []string
}

func (c *experimentCmd) Execute(args []string) error {
	logger, err := log.SetZap(app.Conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger. Reason:%s\n", err)
		return err
	}
	defer logger.Sync()

	s, closer, err := setupSystemComponents(app.Conf)
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up system components. Reason:%s", err))
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			zap.L().Error(fmt.Sprintf("failed to close outputs/reason:%s", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var g run.Group
	g.Add(func() error {
		return s.RunExperiments(ctx, c.names...)
	}, func(error) {
		cancel()
	})
	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	zap.L().Debug(fmt.Sprintf("running experiments %v", c.names))
	if err := g.Run(); err != nil {
		zap.L().Error(fmt.Sprintf("run stopped/reason:%s", err))
		return err
	}
	return nil
}

type listCmd struct {
	out io.Writer
}

func (c *listCmd) Execute(args []string) error {
	for _, e := range experiment.All() {
		fmt.Fprintf(c.out, "%-18s %s\n", e.Name(), e.Description())
	}
	return nil
}

// closers closes every opened output, reporting all failures.
type closers []io.Closer

func (cs closers) Close() error {
	var err error
	for _, c := range cs {
		err = multierr.Append(err, c.Close())
	}
	return err
}

func setupSystemComponents(conf *core.Conf) (*core.SystemComponents, io.Closer, error) {
	core.SetVersion(conf, versionByBuildFlag)
	core.SetInfo(conf)
	log.LogVersion()

	var cs closers
	out, err := common.OpenOutput(conf.Output)
	if err != nil {
		return nil, cs, err
	}
	cs = append(cs, out)
	var journal scheduler.Journal
	if conf.ResultsDir != "" {
		j, err := log.NewResultsJournal(conf.ResultsDir)
		if err != nil {
			return nil, cs, err
		}
		cs = append(cs, j)
		journal = j
	}

	zap.L().Debug("Providing DI Container")
	container, err := provideDIContainer(conf, report.NewWriter(out, conf.Indent), journal)
	if err != nil {
		return nil, cs, err
	}
	zap.L().Debug("Setting up System Components")
	s := core.NewSystemComponents(container)
	if err := s.Setup(conf); err != nil {
		return nil, cs, err
	}
	return s, cs, nil
}

func provideDIContainer(conf *core.Conf, writer core.ResultWriter, journal scheduler.Journal) (*dig.Container, error) {
	c := dig.New()
	providers := []interface{}{
		func() *core.Conf { return conf },
		core.NewSetting,
		experiment.NewExperimentManager,
		func() core.ResultWriter { return writer },
		func(s *core.Setting, w core.ResultWriter) core.Scheduler {
			return scheduler.NewFIFOScheduler(s, w, journal)
		},
	}
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}
