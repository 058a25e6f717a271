package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/capture"
	"github.com/mpapenbr/f1-telemetry-go/pkg/cmd/listen"
	"github.com/mpapenbr/f1-telemetry-go/pkg/cmd/util"
	"github.com/mpapenbr/f1-telemetry-go/pkg/config"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

var (
	appConfig config.Config // holds processed config values
	port      uint16
	speed     float64
	showBoard bool
)

func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay file.pcap",
		Short: "decodes the telemetry datagrams of a pcap capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), args[0])
		},
	}
	cmd.Flags().Uint16Var(&port,
		"port",
		capture.DefaultPort,
		"UDP destination port of the telemetry datagrams (0 means: any)")
	cmd.Flags().Float64Var(&speed,
		"speed",
		0,
		"replay speed relative to the capture (0 means: go as fast as possible)")
	cmd.Flags().BoolVar(&showBoard,
		"board",
		false,
		"print the lap board of every session at the end")
	listen.AddOutputFlags(cmd, &appConfig)
	return cmd
}

//nolint:funlen // by design
func runReplay(ctx context.Context, name string) error {
	logger := util.SetupLogger()
	ctx = log.AddToContext(ctx, logger)
	if telemetry := util.SetupTelemetry(ctx); telemetry != nil {
		defer telemetry.Shutdown()
	}
	boardInterval := time.Duration(0)
	if appConfig.BoardInterval != "" {
		var err error
		if boardInterval, err = time.ParseDuration(appConfig.BoardInterval); err != nil {
			return fmt.Errorf("invalid board interval: %w", err)
		}
	}
	reader, err := capture.OpenFile(name,
		capture.WithPort(port),
		capture.WithSpeed(speed))
	if err != nil {
		return err
	}
	s := stream.New(reader, stream.WithPollInterval(time.Millisecond))
	defer s.Close()

	sinks, err := util.BuildSinks(&appConfig)
	if err != nil {
		return err
	}
	p := util.NewPipeline(ctx, sinks, boardInterval)

	summary := NewSummary()
	runCtx, stop := util.SignalContext(ctx)
	defer stop()
	start := time.Now()
	runErr := s.Run(runCtx, func(res *stream.Result) error {
		summary.Add(res)
		p.Publish(res)
		return nil
	})
	if errors.Is(runErr, io.EOF) {
		runErr = nil
	}
	if failed := p.Stop(); failed > 0 {
		log.Warn("sink writes failed", log.Int("failed", failed))
	}
	summary.Skipped = reader.Skipped()
	summary.Duration = time.Since(start)
	summary.Print(os.Stdout)
	if showBoard {
		printBoards(os.Stdout, p)
	}
	return runErr
}

func printBoards(w io.Writer, p *util.Pipeline) {
	sessions := p.Sessions()
	for _, uid := range sessions.GetSessions() {
		spd, err := sessions.GetSession(uid)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "\nsession %x (format %d)\n", spd.SessionUID, spd.Format)
		for _, line := range spd.Processor.GetData().Lines() {
			fmt.Fprintln(w, line)
		}
	}
}
