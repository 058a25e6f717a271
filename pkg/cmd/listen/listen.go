package listen

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/capture"
	"github.com/mpapenbr/f1-telemetry-go/pkg/cmd/util"
	"github.com/mpapenbr/f1-telemetry-go/pkg/config"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
	"github.com/mpapenbr/f1-telemetry-go/pkg/utils"
)

const DefaultAddr = "0.0.0.0:20777"

var appConfig config.Config // holds processed config values

//nolint:funlen // by design
func NewListenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "receives and decodes telemetry sent by the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListen(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&appConfig.Addr,
		"addr",
		"a",
		DefaultAddr,
		"UDP listen address")
	cmd.Flags().StringVar(&appConfig.PollInterval,
		"poll-interval",
		stream.DefaultPollInterval.String(),
		"pause between polls while no datagram is pending")
	cmd.Flags().IntVar(&appConfig.ReadBuffer,
		"read-buffer",
		0,
		"socket receive buffer in bytes (0 keeps the OS default)")
	AddOutputFlags(cmd, &appConfig)
	cmd.Flags().StringVar(&appConfig.Record,
		"record",
		"",
		"write the received datagrams to this pcap file")
	return cmd
}

// AddOutputFlags registers the flags controlling the sinks and the board
func AddOutputFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.JSONL,
		"jsonl",
		"",
		"write decoded packets as json lines to this file (- for stdout)")
	cmd.Flags().StringVar(&cfg.Select,
		"select",
		"",
		"JSONPath expression applied to each packet of the jsonl output")
	cmd.Flags().StringSliceVar(&cfg.Types,
		"types",
		nil,
		"packet types written to the jsonl output (default all)")
	cmd.Flags().StringVar(&cfg.NatsURL,
		"nats-url",
		"",
		"publish decoded packets to this NATS server")
	cmd.Flags().StringVar(&cfg.NatsSubjectPrefix,
		"nats-subject-prefix",
		"f1t",
		"first token of the NATS subjects")
	cmd.Flags().StringVar(&cfg.BoardInterval,
		"board-interval",
		"",
		"log the lap board of the latest session in this interval (e.g. 10s)")
}

//nolint:funlen // by design
func runListen(ctx context.Context) error {
	logger := util.SetupLogger()
	ctx = log.AddToContext(ctx, logger)
	util.StartProfiling()
	util.SetupGoRoutinesDump()
	if telemetry := util.SetupTelemetry(ctx); telemetry != nil {
		defer telemetry.Shutdown()
	}
	if err := util.WaitForServices(ctx,
		utils.ExtractFromNatsURL(appConfig.NatsURL)); err != nil {
		return err
	}
	pollInterval, err := time.ParseDuration(appConfig.PollInterval)
	if err != nil {
		return fmt.Errorf("invalid poll interval: %w", err)
	}
	boardInterval, err := parseOptionalDuration(appConfig.BoardInterval)
	if err != nil {
		return fmt.Errorf("invalid board interval: %w", err)
	}

	udp, err := stream.ListenUDP(appConfig.Addr,
		stream.WithReadBuffer(appConfig.ReadBuffer))
	if err != nil {
		return err
	}
	var transport stream.Transport = udp
	if appConfig.Record != "" {
		rec, err := capture.CreateFile(appConfig.Record, localUDPAddr(udp))
		if err != nil {
			udp.Close()
			return err
		}
		log.Info("Recording datagrams", log.String("file", appConfig.Record))
		transport = capture.NewRecordingTransport(udp, rec)
	}
	s := stream.New(transport, stream.WithPollInterval(pollInterval))
	defer s.Close()
	log.Info("Listening for telemetry", log.Stringer("addr", s.LocalAddr()))

	sinks, err := util.BuildSinks(&appConfig)
	if err != nil {
		return err
	}
	p := util.NewPipeline(ctx, sinks, boardInterval)

	runCtx, stop := util.SignalContext(ctx)
	defer stop()
	runErr := s.Run(runCtx, func(res *stream.Result) error {
		p.Publish(res)
		return nil
	})
	if failed := p.Stop(); failed > 0 {
		log.Warn("sink writes failed", log.Int("failed", failed))
	}
	if runErr != nil {
		return runErr
	}
	log.Info("Listener terminated")
	return nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func localUDPAddr(t stream.Transport) *net.UDPAddr {
	if addr, ok := t.LocalAddr().(*net.UDPAddr); ok {
		return addr
	}
	return nil
}
