package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/convy/internal/cli/output"
	"github.com/leapstack-labs/convy/internal/gitio"
	"github.com/leapstack-labs/convy/pkg/commit"
	"github.com/leapstack-labs/convy/pkg/lint"
	_ "github.com/leapstack-labs/convy/pkg/lint/rules" // register built-in rules
	"github.com/leapstack-labs/convy/pkg/parser"
	"github.com/leapstack-labs/convy/pkg/token"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	File   string // Read the message from a file (the commit-msg hook path)
	Ref    string // Read the message from a git revision
	Tokens bool   // Dump the token stream instead of the parsed message
	Format string // Output format override: text, markdown, json
}

// parseResult is the JSON shape of a successful parse.
type parseResult struct {
	Valid       bool              `json:"valid"`
	Type        string            `json:"type"`
	Scope       string            `json:"scope,omitempty"`
	Description string            `json:"description"`
	Breaking    bool              `json:"breaking"`
	Body        string            `json:"body,omitempty"`
	Footers     []parseFooter     `json:"footers,omitempty"`
	Diagnostics []parseDiagnostic `json:"diagnostics,omitempty"`
}

type parseFooter struct {
	Token string `json:"token"`
	Value string `json:"value"`
}

type parseDiagnostic struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse and validate a conventional commit message",
		Long: `Parse a commit message against the Conventional Commits grammar and
validate it against the configured policy.

The message is taken from the first argument, from --file, from --ref,
or from stdin when the argument is "-". Exactly one source must be given.

Exit status is non-zero when the message is malformed or violates the
validation policy, so the command works directly as a commit-msg hook.`,
		Example: `  # Parse a message given inline
  convy parse "feat(api): add pagination"

  # Validate a commit message file (commit-msg hook)
  convy parse --file .git/COMMIT_EDITMSG

  # Validate an existing commit
  convy parse --ref HEAD

  # Read from stdin
  git log -1 --format=%B | convy parse -

  # Inspect the token stream
  convy parse --tokens "fix(lexer)!: handle tabs"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "Read the commit message from a file")
	cmd.Flags().StringVar(&opts.Ref, "ref", "", "Read the commit message from a git revision (e.g. HEAD)")
	cmd.Flags().BoolVar(&opts.Tokens, "tokens", false, "Print the token stream instead of the parsed message")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.MarkFlagsMutuallyExclusive("file", "ref")

	return cmd
}

func runParse(cmd *cobra.Command, opts *ParseOptions, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	input, err := readMessage(cmd, opts, args)
	if err != nil {
		return err
	}

	if opts.Tokens {
		return printTokens(r, input)
	}

	msg, err := parser.ParseWithOptions(input, parser.Options{StrictFooters: cfg.StrictFooters})
	if err != nil {
		return fmt.Errorf("invalid commit message: %w", err)
	}
	logger.Debug("parsed commit message", "type", msg.Type, "scope", msg.Scope, "breaking", msg.Breaking)

	diags := lint.Analyze(msg, cfg.LintConfig())
	renderResult(r, msg, diags)

	for _, d := range diags {
		if d.Severity == lint.SeverityError {
			return fmt.Errorf("invalid commit message: %w", d.Err)
		}
	}
	return nil
}

// readMessage resolves the message from the configured source.
func readMessage(cmd *cobra.Command, opts *ParseOptions, args []string) (string, error) {
	sources := 0
	if len(args) > 0 {
		sources++
	}
	if opts.File != "" {
		sources++
	}
	if opts.Ref != "" {
		sources++
	}
	if sources == 0 {
		return "", fmt.Errorf("no commit message given: pass a message, --file, --ref, or \"-\" for stdin")
	}
	if sources > 1 {
		return "", fmt.Errorf("only one message source may be given")
	}

	switch {
	case opts.File != "":
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return string(data), nil
	case opts.Ref != "":
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		repo, err := gitio.OpenRepository(cwd)
		if err != nil {
			return "", err
		}
		return gitio.MessageAt(repo, opts.Ref)
	case args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		return args[0], nil
	}
}

func printTokens(r *output.Renderer, input string) error {
	lex := parser.NewLexer(input)
	var toks []token.Token
	for {
		t := lex.NextToken()
		if t.Type == token.EOF {
			break
		}
		toks = append(toks, t)
	}
	diags := lex.Diagnostics()
	if r.EffectiveMode() == output.ModeJSON {
		type jsonToken struct {
			Type    string `json:"type"`
			Literal string `json:"literal"`
			Line    int    `json:"line"`
			Column  int    `json:"column"`
		}
		out := make([]jsonToken, 0, len(toks))
		for _, t := range toks {
			out = append(out, jsonToken{
				Type:    t.Type.String(),
				Literal: t.Literal,
				Line:    t.Span.Start.Line,
				Column:  t.Span.Start.Column,
			})
		}
		return r.JSON(out)
	}
	for _, t := range toks {
		r.Printf("%d:%d\t%-10s %q\n", t.Span.Start.Line, t.Span.Start.Column, t.Type, t.Literal)
	}
	for _, d := range diags {
		r.Errorf("warning: %s", d)
	}
	return nil
}

func renderResult(r *output.Renderer, msg *commit.Message, diags []lint.Diagnostic) {
	if r.EffectiveMode() == output.ModeJSON {
		res := parseResult{
			Valid:       true,
			Type:        msg.Type,
			Scope:       msg.Scope,
			Description: msg.Description,
			Breaking:    msg.Breaking,
			Body:        msg.Body,
		}
		for _, f := range msg.Footers {
			res.Footers = append(res.Footers, parseFooter{Token: f.Token, Value: f.Value})
		}
		for _, d := range diags {
			res.Diagnostics = append(res.Diagnostics, parseDiagnostic{
				Rule:     d.RuleID,
				Severity: d.Severity.String(),
				Message:  d.Message,
			})
			if d.Severity == lint.SeverityError {
				res.Valid = false
			}
		}
		_ = r.JSON(res)
		return
	}

	hasError := false
	for _, d := range diags {
		if d.Severity == lint.SeverityError {
			hasError = true
		}
	}

	if !hasError {
		r.Success(fmt.Sprintf("valid conventional commit: %s", msg.Header()))
	}
	styles := r.Styles()
	r.Printf("%s %s\n", styles.Field.Render("type:"), msg.Type)
	if msg.Scope != "" {
		r.Printf("%s %s\n", styles.Field.Render("scope:"), msg.Scope)
	}
	r.Printf("%s %s\n", styles.Field.Render("description:"), msg.Description)
	if msg.Breaking {
		r.Printf("%s %v\n", styles.Field.Render("breaking:"), msg.Breaking)
	}
	if msg.Body != "" {
		r.Printf("%s\n%s\n", styles.Field.Render("body:"), indent(msg.Body))
	}
	for _, f := range msg.Footers {
		r.Printf("%s %s: %s\n", styles.Field.Render("footer:"), f.Token, f.Value)
	}
	for _, d := range diags {
		switch d.Severity {
		case lint.SeverityError:
			r.Errorf("%s: %s", d.RuleID, d.Message)
		default:
			r.Printf("%s %s: %s\n", styles.Warning.Render("warning"), d.RuleID, d.Message)
		}
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
