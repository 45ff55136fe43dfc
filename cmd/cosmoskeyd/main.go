package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"xdao.co/cosmoskey/config"
	"xdao.co/cosmoskey/keysvc"
	"xdao.co/cosmoskey/typeurl"

	_ "xdao.co/cosmoskey/bn254"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string
	var listTypes bool

	cmd := &cobra.Command{
		Use:           "cosmoskeyd",
		Short:         "Serve Cosmos public-key validation over gRPC",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listTypes {
				for _, c := range typeurl.List() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.URL, c.Description)
				}
				return nil
			}
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	fs.BoolVar(&listTypes, "list-types", false, "List supported key type URLs and exit")
	fs.String("listen", config.DefaultListen, "listen address")
	fs.String("log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	fs.String("log-format", config.DefaultLogFormat, "log format (text or json)")
	fs.Int("max-msg-bytes", 0, "Max gRPC message size in bytes (send+recv); 0 uses grpc defaults")
	_ = v.BindPFlag("listen", fs.Lookup("listen"))
	_ = v.BindPFlag("log_level", fs.Lookup("log-level"))
	_ = v.BindPFlag("log_format", fs.Lookup("log-format"))
	_ = v.BindPFlag("max_msg_bytes", fs.Lookup("max-msg-bytes"))
	return cmd
}

func serve(cfg config.Config) error {
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}
	defer lis.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	return serveListener(lis, cfg, sig)
}

// serveListener serves until lis fails or a value arrives on sig, which
// triggers a graceful stop. The signal watcher has exited when it returns.
func serveListener(lis net.Listener, cfg config.Config, sig <-chan os.Signal) error {
	log := cfg.Logger()

	opts := []grpc.ServerOption{grpc.UnaryInterceptor(keysvc.UnaryLogger(log))}
	if cfg.MaxMsgBytes > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(cfg.MaxMsgBytes), grpc.MaxSendMsgSize(cfg.MaxMsgBytes))
	}
	s := grpc.NewServer(opts...)
	keysvc.RegisterKeysServer(s, &keysvc.Server{})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case got := <-sig:
			log.WithField("signal", got.String()).Info("shutting down")
			s.GracefulStop()
		case <-done:
		}
	}()
	defer wg.Wait()
	defer close(done)

	log.WithFields(map[string]interface{}{
		"listen": lis.Addr().String(),
		"types":  typeurl.URLs(),
	}).Info("cosmoskeyd listening")
	return s.Serve(lis)
}
