package main

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/anypb"

	"xdao.co/cosmoskey/bn254"
	"xdao.co/cosmoskey/keysvc"
)

type remoteFlags struct {
	target      string
	url         string
	dialTimeout time.Duration
	timeout     time.Duration
	maxMsgBytes int
}

func newRemoteCmd() *cobra.Command {
	rf := &remoteFlags{}
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Call a cosmoskeyd server",
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&rf.target, "target", "127.0.0.1:7788", "gRPC target host:port")
	pf.StringVar(&rf.url, "type", bn254.TypeURL, "type URL of the wire message")
	pf.DurationVar(&rf.dialTimeout, "dial-timeout", 5*time.Second, "Dial timeout")
	pf.DurationVar(&rf.timeout, "timeout", 0, "Per-RPC timeout")
	pf.IntVar(&rf.maxMsgBytes, "max-msg-bytes", 0, "Max gRPC message size in bytes (send+recv); 0 uses grpc defaults")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "normalize <wire-hex>",
			Short: "Print the server's canonical wire hex",
			Args:  cobra.ExactArgs(1),
			RunE: rf.withKey(func(cmd *cobra.Command, c *keysvc.Client, key *anypb.Any) error {
				out, err := c.Normalize(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out.GetValue()))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "fingerprint <wire-hex>",
			Short: "Print the server-computed key CID",
			Args:  cobra.ExactArgs(1),
			RunE: rf.withKey(func(cmd *cobra.Command, c *keysvc.Client, key *anypb.Any) error {
				id, err := c.Fingerprint(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id.String())
				return nil
			}),
		},
		&cobra.Command{
			Use:   "render <wire-hex>",
			Short: "Print the server-rendered key JSON",
			Args:  cobra.ExactArgs(1),
			RunE: rf.withKey(func(cmd *cobra.Command, c *keysvc.Client, key *anypb.Any) error {
				doc, err := c.Render(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), doc)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "types",
			Short: "List type URLs the server supports",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := rf.dial()
				if err != nil {
					return err
				}
				defer c.Close()
				urls, err := c.Types()
				if err != nil {
					return err
				}
				for _, u := range urls {
					fmt.Fprintln(cmd.OutOrStdout(), u)
				}
				return nil
			},
		},
	)
	return cmd
}

func (rf *remoteFlags) dial() (*keysvc.Client, error) {
	c, err := keysvc.Dial(rf.target, keysvc.DialOptions{Timeout: rf.dialTimeout, MaxMsgBytes: rf.maxMsgBytes})
	if err != nil {
		return nil, err
	}
	c.Timeout = rf.timeout
	return c, nil
}

func (rf *remoteFlags) withKey(fn func(*cobra.Command, *keysvc.Client, *anypb.Any) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		b, err := parseHex(args[0])
		if err != nil {
			return err
		}
		c, err := rf.dial()
		if err != nil {
			return err
		}
		defer c.Close()
		return fn(cmd, c, &anypb.Any{TypeUrl: rf.url, Value: b})
	}
}
