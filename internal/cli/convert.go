package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/weiawesome/wes-io-live/ulid-service/pkg/ulid"
)

func newFromUUIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "from-uuid <uuid>",
		Short: "Reinterpret a UUID's 16 bytes as a ULID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid UUID: %w", err)
			}
			return render(cmd, ulid.FromUUID(u))
		},
	}
}

func newFromFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "from-fields <f1> <f2> <f3> <f4> <f5>",
		Short: "Build a ULID from its five big-endian integer fields",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [5]uint64
			for i, bits := range [5]int{32, 16, 16, 32, 32} {
				n, err := strconv.ParseUint(args[i], 10, bits)
				if err != nil {
					return fmt.Errorf("field %d: %w", i+1, err)
				}
				v[i] = n
			}
			id := ulid.FromFields(uint32(v[0]), uint16(v[1]), uint16(v[2]), uint32(v[3]), uint32(v[4]))
			return render(cmd, id)
		},
	}
}

func newFromIntCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "from-int <decimal>",
		Short: "Build a ULID from its 128-bit unsigned integer value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// FromString also takes 0x/0b prefixes and stops at trailing junk.
			if args[0] == "" || strings.Trim(args[0], "0123456789") != "" {
				return fmt.Errorf("invalid decimal integer: %q", args[0])
			}
			v, err := uint128.FromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid 128-bit integer: %w", err)
			}
			return render(cmd, ulid.FromUint128(v))
		},
	}
}

func render(cmd *cobra.Command, id ulid.ULID) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.Render(id))
	return nil
}
