package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"xdao.co/cosmoskey/bn254"
	"xdao.co/cosmoskey/fixedbytes"
	"xdao.co/cosmoskey/keyid"
	"xdao.co/cosmoskey/keysvc"
	"xdao.co/cosmoskey/typeurl"
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
		if fixedbytes.IsInvalidLength(err) || typeurl.IsUnknownType(err) || keysvc.IsInvalidKey(err) {
			return 3
		}
		return 2
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cosmoskey",
		Short:         "Encode, decode and fingerprint Cosmos public keys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newFingerprintCmd(),
		newTypesCmd(),
		newRemoteCmd(),
	)
	return root
}

func newEncodeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "encode <key>",
		Short: "Encode a BN254 public key (base64 or 0x-hex) to wire hex, Any JSON or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKeyArg(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case "wire":
				b, err := k.Marshal()
				if err != nil {
					return err
				}
				fmt.Fprintln(w, hex.EncodeToString(b))
				return nil
			case "json":
				return writeJSON(w, k)
			case "any":
				return writeAnyJSON(w, bn254.TypeURL, k)
			default:
				return fmt.Errorf("unknown --format %q (want wire, json or any)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "wire", "output format: wire, json or any")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "decode <wire-hex>",
		Short: "Decode wire bytes through the type URL registry and print JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHex(args[0])
			if err != nil {
				return err
			}
			v, err := typeurl.Decode(url, b)
			if err != nil {
				return err
			}
			return writeAnyJSON(cmd.OutOrStdout(), url, v)
		},
	}
	cmd.Flags().StringVar(&url, "type", bn254.TypeURL, "type URL of the wire message")
	return cmd
}

func newFingerprintCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "fingerprint <wire-hex>",
		Short: "Print the CID of a key's canonical wire bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHex(args[0])
			if err != nil {
				return err
			}
			v, err := typeurl.Decode(url, b)
			if err != nil {
				return err
			}
			a, err := typeurl.Pack(url, v)
			if err != nil {
				return err
			}
			id, err := keyid.Of(a.GetValue())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "type", bn254.TypeURL, "type URL of the wire message")
	return cmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported key type URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range typeurl.List() {
				if c.Description == "" {
					fmt.Fprintln(cmd.OutOrStdout(), c.URL)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.URL, c.Description)
			}
			return nil
		},
	}
}

// parseKeyArg accepts standard base64 or 0x-prefixed hex.
func parseKeyArg(s string) (bn254.PubKey, error) {
	s = strings.TrimSpace(s)
	var raw []byte
	var err error
	if strings.HasPrefix(s, "0x") {
		raw, err = parseHex(s)
	} else {
		raw, err = fixedbytes.DecodeBase64([]byte(s))
	}
	if err != nil {
		return bn254.PubKey{}, err
	}
	return bn254.NewPubKey(raw)
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// writeAnyJSON prints v's JSON object with an "@type" member prepended.
func writeAnyJSON(w io.Writer, url string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return err
	}
	typ, err := json.Marshal(url)
	if err != nil {
		return err
	}
	fields["@type"] = typ
	return writeJSON(w, fields)
}
