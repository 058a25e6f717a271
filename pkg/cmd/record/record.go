package record

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
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

const defaultAddr = "0.0.0.0:20777"

var appConfig config.Config // holds processed config values

func NewRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record [file.pcap]",
		Short: "writes the datagrams sent by the game into a pcap file",
		Long: `Writes every received datagram into a pcap file without decoding it.
If no file is given a new one named f1t-<uuid>.pcap is created.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				appConfig.Record = args[0]
			}
			return runRecord(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&appConfig.Addr,
		"addr",
		"a",
		defaultAddr,
		"UDP listen address")
	cmd.Flags().IntVar(&appConfig.ReadBuffer,
		"read-buffer",
		0,
		"socket receive buffer in bytes (0 keeps the OS default)")
	return cmd
}

// passThrough keeps the datagrams opaque
type passThrough struct{}

func (passThrough) Decode([]byte, int) (model.Packet, error) {
	return nil, nil
}

func runRecord(ctx context.Context) error {
	util.SetupLogger()
	if telemetry := util.SetupTelemetry(ctx); telemetry != nil {
		defer telemetry.Shutdown()
	}
	name := appConfig.Record
	if name == "" {
		name = capture.DefaultFileName()
	}
	udp, err := stream.ListenUDP(appConfig.Addr,
		stream.WithReadBuffer(appConfig.ReadBuffer))
	if err != nil {
		return err
	}
	dst, _ := udp.LocalAddr().(*net.UDPAddr)
	rec, err := capture.CreateFile(name, dst)
	if err != nil {
		udp.Close()
		return err
	}
	s := stream.New(capture.NewRecordingTransport(udp, rec),
		stream.WithDecoder(passThrough{}))
	log.Info("Recording datagrams",
		log.Stringer("addr", s.LocalAddr()),
		log.String("file", name))

	runCtx, stop := util.SignalContext(ctx)
	defer stop()
	start := time.Now()
	runErr := s.Run(runCtx, func(*stream.Result) error { return nil })
	if err := s.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close recording: %w", err)
	}
	log.Info("Recording finished",
		log.String("file", name),
		log.Int("datagrams", rec.Count()),
		log.Duration("duration", time.Since(start)))
	return runErr
}
