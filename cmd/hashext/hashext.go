package main

import (
	"context"
	"fmt"
	"github.com/mangalorg/hashext"
	"github.com/mangalorg/hashext/vm"
	"github.com/mangalorg/hashext/vm/lib"
	"github.com/philippgille/gokv/bbolt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

// app holds what every command shares
type app struct {
	fs     afero.Fs
	logger *hashext.Logger

	logLevel  string
	cachePath string
}

func newApp(fs afero.Fs) *app {
	return &app{
		fs:     fs,
		logger: hashext.NewLogger(),
	}
}

// client builds a client from the persistent flags.
// The returned function releases the forgery store.
func (a *app) client() (hashext.Client, func() error, error) {
	options := hashext.DefaultClientOptions()
	options.FS = a.fs
	options.Log = a.logger.Log
	options.Debug = a.logger.Debug

	closer := func() error { return nil }

	if a.cachePath != "" {
		store, err := bbolt.NewStore(bbolt.Options{
			BucketName: "forgeries",
			Path:       a.cachePath,
		})
		if err != nil {
			return hashext.Client{}, nil, err
		}

		options.ForgeryStore = store
		closer = store.Close
	}

	return hashext.NewClient(options), closer, nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hashext",
		Short:         "hashext performs length extension attacks on MD5",
		Long:          `hashext computes MD5(secret || padding || extension) knowing only MD5(secret) and the length of the secret`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}

			a.logger.SetLevel(level)
			a.logger.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warning", "log level: debug, info, warning, error")
	rootCmd.PersistentFlags().StringVar(&a.cachePath, "cache", "", "path to a bbolt database to cache forgeries in")

	rootCmd.AddCommand(
		newHashCmd(a),
		newExtendCmd(a),
		newBatchCmd(a),
		newRunCmd(a),
		newDocCmd(),
	)

	return rootCmd
}

func newHashCmd(a *app) *cobra.Command {
	encoding := hashext.EncodingRaw

	cmd := &cobra.Command{
		Use:   "hash <message>",
		Short: "Print the MD5 digest of a message",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closer, err := a.client()
			if err != nil {
				return err
			}
			defer closer()

			var message []byte

			if path, _ := cmd.Flags().GetString("file"); path != "" {
				if len(args) != 0 {
					return fmt.Errorf("either message or --file must be given, not both")
				}

				message, err = afero.ReadFile(a.fs, path)
				if err != nil {
					return err
				}
			} else {
				if len(args) != 1 {
					return fmt.Errorf("message is required")
				}

				message, err = encoding.Decode(args[0])
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), client.Hash(message))
			return nil
		},
	}

	cmd.Flags().Var(&encoding, "encoding", "encoding of the message: raw or hex")
	cmd.Flags().StringP("file", "f", "", "hash the contents of a file instead")

	return cmd
}

func newExtendCmd(a *app) *cobra.Command {
	encoding := hashext.EncodingRaw

	cmd := &cobra.Command{
		Use:   "extend",
		Short: "Extend a digest with attacker chosen bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closer, err := a.client()
			if err != nil {
				return err
			}
			defer closer()

			baseDigest, _ := cmd.Flags().GetString("base-digest")
			baseLength, _ := cmd.Flags().GetInt("base-length")
			rawExtension, _ := cmd.Flags().GetString("extension")

			extension, err := encoding.Decode(rawExtension)
			if err != nil {
				return fmt.Errorf("extension: %w", err)
			}

			var base []byte
			if cmd.Flags().Changed("base") {
				rawBase, _ := cmd.Flags().GetString("base")

				base, err = encoding.Decode(rawBase)
				if err != nil {
					return fmt.Errorf("base: %w", err)
				}
			}

			forgery, err := client.Extend(hashext.ExtendRequest{
				BaseLength:  baseLength,
				BaseDigest:  baseDigest,
				Extension:   extension,
				AssumedBase: base,
			})
			if err != nil {
				return err
			}

			if output, _ := cmd.Flags().GetString("output"); output != "" {
				return client.WriteForgery(output, forgery)
			}

			return printYAML(cmd.OutOrStdout(), forgery)
		},
	}

	cmd.Flags().String("base-digest", "", "MD5 digest to extend")
	cmd.Flags().Int("base-length", 0, "length of the pre-image of base-digest in bytes")
	cmd.Flags().String("base", "", "pre-image of base-digest, zero bytes are used when omitted")
	cmd.Flags().String("extension", "", "bytes to extend the digest with")
	cmd.Flags().Var(&encoding, "encoding", "encoding of base and extension: raw or hex")
	cmd.Flags().StringP("output", "o", "", "write the forgery to a file instead of stdout")

	_ = cmd.MarkFlagRequired("base-digest")
	_ = cmd.MarkFlagRequired("base-length")
	_ = cmd.MarkFlagRequired("extension")

	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Run length extension jobs from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closer, err := a.client()
			if err != nil {
				return err
			}
			defer closer()

			batch, err := client.LoadBatch(args[0])
			if err != nil {
				return err
			}

			results, err := client.RunBatch(context.Background(), batch)
			if err != nil {
				return err
			}

			if output, _ := cmd.Flags().GetString("output"); output != "" {
				return client.WriteBatchResults(output, results)
			}

			return printYAML(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringP("output", "o", "", "write the results to a file instead of stdout")

	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script> [args...]",
		Short: "Run a Lua script with the hashext module available",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := vm.LoadScript(a.fs, args[0])
			if err != nil {
				return err
			}

			a.logger.Log(fmt.Sprintf("Running script %q", script.Info().Name))
			return script.Run(context.Background(), args[1:])
		},
	}
}

func newDocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doc",
		Short: "Generate documentation for the Lua module",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			doc := lib.Lib(lib.Options{}).LuaDoc()

			fmt.Fprintln(cmd.OutOrStdout(), doc)
		},
	}
}

func printYAML(w io.Writer, v any) error {
	marshalled, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	_, err = w.Write(marshalled)
	return err
}

func main() {
	err := newRootCmd(newApp(afero.NewOsFs())).Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
