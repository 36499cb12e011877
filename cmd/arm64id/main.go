package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/leodido/arm64id"
	"github.com/leodido/arm64id/internal/sysreg"
	"github.com/leodido/structcli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
	"go.uber.org/zap"
)

// Build metadata injected via ldflags.
// When built without ldflags (e.g., plain `go build`), these remain
// at their zero values and the version command omits them gracefully.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	// Probe workers are this same binary; hand over before cobra sees argv.
	arm64id.MaybeRunWorker(arm64id.DefaultRegistry())

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ReportOptions defines flags for the full report.
type ReportOptions struct {
	JSON    bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
	Verbose bool `flag:"verbose" flagshort:"v" flagdescr:"Log probe worker activity to stderr"`
}

func (o *ReportOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func rootCmd() *cobra.Command {
	opts := &ReportOptions{}

	root := &cobra.Command{
		Use:   "arm64id",
		Short: "AArch64 system register and hardware capability inspector",
		Long: `arm64id reads the AArch64 identification and timer system registers
that user space can reach, and decodes the HWCAP and HWCAP2 capability
words the kernel publishes in the auxiliary vector.

Registers the CPU does not implement are reported as <invalid>: every
register is read in a worker process, so a trapping read never takes the
report down with it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			log, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			report, err := arm64id.ProbeWith(arm64id.WithLogger(log))
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(c.OutOrStdout(), reportJSON(report))
			}
			fmt.Fprint(c.OutOrStdout(), report)
			return nil
		},
	}

	if err := opts.Attach(root); err != nil {
		panic(err)
	}

	root.AddCommand(hwcapCmd())
	root.AddCommand(listCmd())
	root.AddCommand(decodeCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(versionCmd())
	return root
}

// HWCAPOptions defines flags for the hwcap subcommand.
type HWCAPOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *HWCAPOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func hwcapCmd() *cobra.Command {
	opts := &HWCAPOptions{}

	cmd := &cobra.Command{
		Use:   "hwcap",
		Short: "Decode the capability words reported by the kernel",
		Args:  cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			report, err := arm64id.ProbeWith(arm64id.WithoutRegisters())
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(c.OutOrStdout(), reportJSON(report).Capabilities)
			}
			fmt.Fprint(c.OutOrStdout(), report)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// ListOptions defines flags for the list subcommand.
type ListOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *ListOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

type registerEntry struct {
	Name     string `json:"name"`
	Alias    string `json:"alias,omitempty"`
	Encoding string `json:"encoding"`
}

func listCmd() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the system registers that are probed, without probing them",
		Args:  cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			entries := registerEntries()
			if opts.JSON {
				return printJSON(c.OutOrStdout(), entries)
			}
			for _, e := range entries {
				fmt.Fprintf(c.OutOrStdout(), "%-14s %-20s %s\n", e.Name, e.Alias, e.Encoding)
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func registerEntries() []registerEntry {
	regs := sysreg.All()
	entries := make([]registerEntry, 0, len(regs))
	for _, r := range regs {
		e := registerEntry{
			Name:     r.String(),
			Encoding: fmt.Sprintf("0x%08x", r.MRS(0)),
		}
		if alias := arm64id.Alias(e.Name); alias != e.Name {
			e.Alias = alias
		}
		entries = append(entries, e)
	}
	return entries
}

// DecodeOptions defines flags for the decode subcommand.
type DecodeOptions struct {
	Category arm64id.Category `flag:"category" flagshort:"c" flagdescr:"Capability word the mask belongs to (hwcap, hwcap2)" flagcustom:"true"`
	JSON     bool             `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *DecodeOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *DecodeOptions) DefineCategory(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*arm64id.Category)
	return enumflag.New(fieldPtr, "category", categoryIdentifierMap, enumflag.EnumCaseInsensitive), descr
}

func (o *DecodeOptions) DecodeCategory(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}
	return parseCategory(s)
}

var categoryIdentifierMap = func() map[arm64id.Category][]string {
	ids := make(map[arm64id.Category][]string, len(arm64id.Categories))
	for _, c := range arm64id.Categories {
		ids[c] = []string{strings.ToLower(c.String())}
	}
	return ids
}()

func parseCategory(s string) (arm64id.Category, error) {
	var c arm64id.Category
	if err := enumflag.New(&c, "category", categoryIdentifierMap, enumflag.EnumCaseInsensitive).Set(strings.TrimSpace(s)); err != nil {
		return 0, fmt.Errorf("unknown category: %q (available: hwcap, hwcap2)", s)
	}
	return c, nil
}

func decodeCmd() *cobra.Command {
	opts := &DecodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode MASK",
		Short: "Decode a capability mask given on the command line",
		Long: `Decode a capability mask given on the command line.

MASK accepts Go integer syntax: decimal, 0x hexadecimal, 0o octal or 0b binary.
Useful to inspect values captured on another machine.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			mask, err := parseMask(args[0])
			if err != nil {
				return err
			}

			cs := arm64id.Decode(opts.Category, mask)
			if opts.JSON {
				return printJSON(c.OutOrStdout(), capabilitiesJSON(cs))
			}
			fmt.Fprint(c.OutOrStdout(), cs)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func parseMask(s string) (uint64, error) {
	mask, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid mask %q: %w", s, err)
	}
	return mask, nil
}

// CheckOptions defines flags for the check subcommand.
type CheckOptions struct {
	Require requirementList `flag:"require" flagshort:"r" flagdescr:"Required capabilities or registers (see available names above)" flagrequired:"true" flagcustom:"true"`
	JSON    bool            `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
	Verbose bool            `flag:"verbose" flagshort:"v" flagdescr:"Log probe worker activity to stderr"`
}

func (o *CheckOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *CheckOptions) DefineRequire(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*requirementList)
	*fieldPtr = nil
	return fieldPtr, descr
}

func (o *CheckOptions) DecodeRequire(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}

	return parseRequirements(s)
}

// CompleteRequire completes the last element of a comma-separated list,
// leaving out names already selected.
func (o *CheckOptions) CompleteRequire(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix, partial := "", toComplete
	if i := strings.LastIndexByte(toComplete, ','); i >= 0 {
		prefix, partial = toComplete[:i+1], toComplete[i+1:]
	}

	selected := map[string]struct{}{}
	for _, s := range strings.Split(prefix, ",") {
		selected[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	partial = strings.ToLower(strings.TrimSpace(partial))
	var candidates []string
	for _, name := range requirementNames() {
		if _, ok := selected[name]; ok {
			continue
		}
		if strings.HasPrefix(name, partial) {
			candidates = append(candidates, prefix+name)
		}
	}
	return candidates, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func checkCmd() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check specific capability and register requirements",
		Long:  checkLongDescription(),
		Args:  cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if len(opts.Require) == 0 {
				return fmt.Errorf("no requirements specified")
			}

			log, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			err = arm64id.CheckWith([]arm64id.ProbeOption{arm64id.WithLogger(log)}, opts.Require...)
			if err != nil {
				var fe *arm64id.FeatureError
				if errors.As(err, &fe) {
					if opts.JSON {
						_ = printJSON(c.OutOrStdout(), map[string]any{
							"ok":      false,
							"feature": fe.Feature,
							"reason":  fe.Reason,
						})
						os.Exit(1)
					}
					fmt.Fprintf(os.Stderr, "FAIL: %s: %s\n", fe.Feature, fe.Reason)
					os.Exit(1)
				}
				return err
			}

			if opts.JSON {
				return printJSON(c.OutOrStdout(), map[string]any{"ok": true})
			}
			fmt.Fprintln(c.OutOrStdout(), "OK: all requirements satisfied")
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show kernel and tool version",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			out := c.OutOrStdout()
			if version != "" {
				fmt.Fprintf(out, "arm64id %s", version)
				if commit != "" {
					fmt.Fprintf(out, " (%s)", commit)
				}
				if date != "" {
					fmt.Fprintf(out, " built %s", date)
				}
				fmt.Fprintln(out)
			} else {
				fmt.Fprintln(out, "arm64id (dev)")
			}

			report, err := arm64id.ProbeWith(arm64id.WithoutRegisters(), arm64id.WithoutCapabilities())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Kernel: %s (%s)\n", report.KernelVersion, report.Machine)
			return nil
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type registerJSON struct {
	Name      string `json:"name"`
	Alias     string `json:"alias,omitempty"`
	Supported bool   `json:"supported"`
	Value     string `json:"value,omitempty"`
	Error     string `json:"error,omitempty"`
}

type capabilitiesJSONView struct {
	Category string   `json:"category"`
	Mask     string   `json:"mask"`
	Names    []string `json:"names"`
	Unknown  string   `json:"unknown,omitempty"`
}

type reportJSONView struct {
	Registers    []registerJSON         `json:"registers,omitempty"`
	Capabilities []capabilitiesJSONView `json:"capabilities"`
	Kernel       string                 `json:"kernel,omitempty"`
	Machine      string                 `json:"machine,omitempty"`
}

// reportJSON renders values as hex strings; JSON numbers lose precision
// above 2^53.
func reportJSON(r *arm64id.Report) reportJSONView {
	view := reportJSONView{
		Capabilities: []capabilitiesJSONView{},
		Kernel:       r.KernelVersion,
		Machine:      r.Machine,
	}
	for _, rd := range r.Registers {
		reg := registerJSON{Name: rd.Name, Supported: rd.Supported}
		if rd.Alias != rd.Name {
			reg.Alias = rd.Alias
		}
		if rd.Supported {
			reg.Value = fmt.Sprintf("0x%016x", rd.Value)
		}
		if rd.Error != nil {
			reg.Error = rd.Error.Error()
		}
		view.Registers = append(view.Registers, reg)
	}
	for _, cs := range r.Capabilities {
		view.Capabilities = append(view.Capabilities, capabilitiesJSON(cs))
	}
	return view
}

func capabilitiesJSON(cs arm64id.CapabilitySet) capabilitiesJSONView {
	view := capabilitiesJSONView{
		Category: cs.Category.String(),
		Mask:     fmt.Sprintf("0x%016x", cs.Mask),
		Names:    slices.Clone(cs.Names),
	}
	if view.Names == nil {
		view.Names = []string{}
	}
	if cs.Unknown != 0 {
		view.Unknown = fmt.Sprintf("0x%x", cs.Unknown)
	}
	return view
}

// requirementNames lists capability names first, then register aliases,
// all lower case.
func requirementNames() []string {
	return append(arm64id.CapabilityNames(), registerAliases()...)
}

func registerAliases() []string {
	aliases := make([]string, 0, len(arm64id.Aliases()))
	for _, alias := range arm64id.Aliases() {
		aliases = append(aliases, alias)
	}
	slices.Sort(aliases)
	return aliases
}

func checkLongDescription() string {
	return fmt.Sprintf(`Check that the CPU and kernel provide all required features.
Exits with code 0 if all requirements are met, 1 if any are missing.

A requirement is a capability name (optionally prefixed with hwcap_ or
hwcap2_), a register alias, or a generic register name such as S3_0_C0_C4_4.

Available capabilities:
%s

Available register aliases:
%s`,
		formatWrappedList(arm64id.CapabilityNames(), "  ", 80),
		formatWrappedList(registerAliases(), "  ", 80))
}

func formatWrappedList(items []string, indent string, maxWidth int) string {
	if len(items) == 0 {
		return indent + "(none)"
	}

	lines := make([]string, 0, len(items))
	line := indent
	for i, item := range items {
		token := item
		if i < len(items)-1 {
			token += ", "
		}

		if len(line)+len(token) > maxWidth && line != indent {
			lines = append(lines, strings.TrimRight(line, " "))
			line = indent + token
			continue
		}

		line += token
	}

	lines = append(lines, strings.TrimRight(line, " "))
	return strings.Join(lines, "\n")
}

// requirementList is a comma-separated, repeatable list of requirements.
// Capabilities are matched through an enum flag; anything else must name a
// register.
type requirementList []arm64id.Requirement

// capabilityID indexes arm64id.AllCapabilities.
type capabilityID int

var capabilityIdentifierMap = func() map[capabilityID][]string {
	all := arm64id.AllCapabilities()
	ids := make(map[capabilityID][]string, len(all))
	for i, c := range all {
		ids[capabilityID(i)] = []string{
			strings.ToLower(c.Name),
			strings.ToLower(c.Category.String() + "_" + c.Name),
		}
	}
	return ids
}()

func (r *requirementList) String() string {
	names := make([]string, 0, len(*r))
	for _, req := range *r {
		names = append(names, fmt.Sprint(req))
	}

	return strings.Join(names, ",")
}

func (r *requirementList) Set(input string) error {
	reqs, err := parseRequirements(input)
	if err != nil {
		return err
	}

	*r = append(*r, reqs...)
	return nil
}

func (r *requirementList) Type() string {
	return "requirement"
}

func parseRequirements(input string) (requirementList, error) {
	if strings.TrimSpace(input) == "" {
		return requirementList{}, nil
	}

	parts := strings.Split(input, ",")
	reqs := make(requirementList, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		var id capabilityID
		enumValue := enumflag.New(&id, "capability", capabilityIdentifierMap, enumflag.EnumCaseInsensitive)
		if err := enumValue.Set(name); err == nil {
			reqs = append(reqs, arm64id.AllCapabilities()[id])
			continue
		}

		req, err := arm64id.ParseRequirement(name)
		if err != nil {
			return nil, fmt.Errorf("unknown requirement: %q (run 'arm64id check --help' for available names)", name)
		}
		reqs = append(reqs, req)
	}

	return reqs, nil
}
