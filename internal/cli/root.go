package cli

import (
	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/ulid-service/internal/generator"
	"github.com/weiawesome/wes-io-live/ulid-service/pkg/ulid"
)

// NewRoot constructs the root Cobra command for ulidctl.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "ulidctl",
		Short:         "Generate, inspect and convert ULIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("format", string(generator.FormatULID), "id format: ulid, ulid-upper, uuid, canonical")
	root.PersistentFlags().String("case", "", "letter case for ulid text: lower or upper (overrides the ulid format's case)")

	root.AddCommand(newNewCommand())
	root.AddCommand(newInspectCommand())
	root.AddCommand(newFromUUIDCommand())
	root.AddCommand(newFromFieldsCommand())
	root.AddCommand(newFromIntCommand())
	return root
}

func formatFlag(cmd *cobra.Command) (generator.Format, error) {
	name, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", err
	}
	format, err := generator.ParseFormat(name)
	if err != nil {
		return "", err
	}

	raw, err := cmd.Flags().GetString("case")
	if err != nil {
		return "", err
	}
	if raw == "" {
		return format, nil
	}
	c, err := ulid.ParseCase(raw)
	if err != nil {
		return "", err
	}
	return format.WithCase(c)
}
