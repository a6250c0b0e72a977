package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/tomasbasham/cli-runtime/iooption"
	"github.com/tomasbasham/cli-runtime/templates"

	pinata "github.com/web3-storage/go-pinata-client"
)

// ErrMissingArgument is returned when no file path is given.
var ErrMissingArgument = errors.New("expected one file path argument")

var (
	rootLong = templates.LongDesc(`
		Upload a file to Pinata and print the CID it was pinned under.

		The Pinata JWT is read from PINATA_JWT in the env file (.env by
		default). If the file has no value the process environment is used.`)

	rootExamples = templates.Examples(`
		# Pin a file using PINATA_JWT from ./.env or the environment
		pinata-pin ./metadata.json

		# Also print a gateway link
		PINATA_JWT="eyJhbGc..." pinata-pin --link ./image.png`)
)

// PinOptions defines the options for the `pinata-pin` command.
type PinOptions struct {
	FilePath string
	EnvFile  string
	Endpoint string
	Link     bool
	Verbose  bool

	iooption.IOStreams
}

// NewPinOptions provides an initialised PinOptions instance.
func NewPinOptions(streams iooption.IOStreams) *PinOptions {
	return &PinOptions{
		IOStreams: streams,
	}
}

// NewRootCommand creates the `pinata-pin` command bound to the process
// standard streams.
func NewRootCommand() *cobra.Command {
	options := NewPinOptions(iooption.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})

	return NewRootCommandWithArgs(options)
}

// NewRootCommandWithArgs creates the `pinata-pin` command using the given
// options.
func NewRootCommandWithArgs(o *PinOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pinata-pin [flags] <file-path>",
		Short:         "Pin a file to IPFS through Pinata",
		Long:          rootLong,
		Example:       rootExamples,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()

	flags.StringVar(&o.EnvFile, "env-file", ".env", "File of KEY=value pairs to read PINATA_JWT from")
	flags.StringVar(&o.Endpoint, "endpoint", pinata.DefaultEndpoint, "URL files are pinned to")
	flags.BoolVar(&o.Link, "link", false, "Also print a dweb.link gateway URL")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false, "Log request details to stderr")

	return cmd
}

func (o *PinOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprint(o.ErrOut, cmd.UsageString())
		if len(args) > 1 {
			return fmt.Errorf("%w, got %d", ErrMissingArgument, len(args))
		}
		return ErrMissingArgument
	}
	o.FilePath = args[0]
	return nil
}

func (o *PinOptions) Validate() error {
	u, err := url.Parse(o.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", o.Endpoint)
	}
	return nil
}

func (o *PinOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if o.Verbose {
		// stdr verbosity is process-wide.
		prev := stdr.SetVerbosity(1)
		defer stdr.SetVerbosity(prev)
		ctx = logr.NewContext(ctx, stdr.New(log.New(o.ErrOut, "", log.LstdFlags)))
	}

	token, err := pinata.ResolveToken(o.EnvFile)
	if err != nil {
		return err
	}

	c, err := pinata.NewClient(
		pinata.WithToken(token),
		pinata.WithEndpoint(o.Endpoint),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	cid, err := c.PinFile(ctx, o.FilePath)
	if err != nil {
		return err
	}
	fmt.Fprintln(o.Out, cid)

	if o.Link {
		link, err := pinata.GatewayURL(cid)
		if err != nil {
			fmt.Fprintf(o.ErrOut, "warning: no gateway link: %v\n", err)
			return nil
		}
		fmt.Fprintln(o.Out, link)
	}
	return nil
}
