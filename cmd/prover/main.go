// Command prover is the batch CLI entry point for the TPTP higher-order
// unification kernel: it parses a problem file (following include
// directives), elaborates its signature and conjecture into the typed
// term algebra, and drives internal/search's breadth-first pre-unifier
// stream, printing the substitutions found followed by an SZS status line.
//
// Dispatch is flag-based (flag.Bool for --version/--help, flag.Arg(0)
// selecting a subcommand) with fatih/color SprintFuncs for status-line
// colouring, kept deliberately thin: just the two batch operations,
// check and solve, needed to exercise the kernel end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/go-tptp/huet/internal/ast"
	"github.com/go-tptp/huet/internal/elab"
	"github.com/go-tptp/huet/internal/errors"
	"github.com/go-tptp/huet/internal/huet"
	"github.com/go-tptp/huet/internal/normal"
	"github.com/go-tptp/huet/internal/parser"
	"github.com/go-tptp/huet/internal/search"
	"github.com/go-tptp/huet/internal/sig"
	"github.com/go-tptp/huet/internal/subst"
	"github.com/go-tptp/huet/internal/szs"
	"github.com/go-tptp/huet/internal/term"
)

// Version is set by -ldflags at build time.
var Version = "dev"

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		depthFlag   = flag.Int("depth", search.DefaultMaxDepth, "Maximum BFS search depth")
		timeoutFlag = flag.Duration("timeout", 10*time.Second, "Search time budget")
		maxFlag     = flag.Int("max", 1, "Maximum number of pre-unifiers to print (0 = unbounded)")
		jsonFlag    = flag.Bool("json", false, "Emit structured errors as JSON")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch flag.Arg(0) {
	case "check":
		if flag.NArg() < 2 {
			usageError("check", "prover check <file.p>")
		}
		checkFile(flag.Arg(1), *jsonFlag)
	case "solve":
		if flag.NArg() < 2 {
			usageError("solve", "prover solve <file.p>")
		}
		solveFile(flag.Arg(1), *depthFlag, *timeoutFlag, *maxFlag, *jsonFlag)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func usageError(cmd, usage string) {
	fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
	fmt.Printf("Usage: %s\n", usage)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("prover %s\n", bold(Version))
	fmt.Println("A higher-order TPTP pre-unification kernel")
}

func printHelp() {
	fmt.Println(bold("prover - Huet pre-unification for TPTP (THF/TFF/FOF/TCF/CNF/TPI)"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  prover <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <file>   Parse and elaborate a problem, reporting signature errors\n", cyan("check"))
	fmt.Printf("  %s <file>   Elaborate and search for pre-unifiers of the conjecture\n", cyan("solve"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --version        Print version information")
	fmt.Println("  --help           Show this help message")
	fmt.Println("  --depth <n>      Maximum BFS search depth (default 60)")
	fmt.Println("  --timeout <dur>  Search time budget, e.g. 10s, 500ms (default 10s)")
	fmt.Println("  --max <n>        Maximum number of pre-unifiers to print, 0 = unbounded (default 1)")
	fmt.Println("  --json           Emit structured errors as JSON")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s\n", cyan("prover check problems/GRP001-1.p"))
	fmt.Printf("  %s\n", cyan("prover --max 3 solve problems/GRP001-1.p"))
}

// checkFile parses and elaborates path without searching. On parse
// errors it reports all of them and exits nonzero; otherwise it prints
// the include, input and signature-entry counts.
func checkFile(path string, asJSON bool) {
	f, reports := loadFile(path, map[string]bool{})
	if len(reports) > 0 {
		reportErrors(reports, szs.SyntaxError, filepath.Base(path), asJSON)
		os.Exit(1)
	}

	e, _, warnings := elaborateFile(f)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: %v\n", yellow("Warning"), w)
	}

	fmt.Printf("%s %s: %d include(s), %d input(s), %d signature entr(y/ies)\n",
		green("✓"), path, countIncludes(f), len(f.Inputs), e.Table.Size())
}

// solveFile parses, elaborates, and runs the search driver over every
// conjecture/negated_conjecture equation found, printing up to maxResults
// pre-unifiers followed by an SZS status line: Theorem if any was found,
// GaveUp if none, Timeout if the time budget ran out.
func solveFile(path string, depth int, timeout time.Duration, maxResults int, asJSON bool) {
	f, reports := loadFile(path, map[string]bool{})
	if len(reports) > 0 {
		reportErrors(reports, szs.SyntaxError, filepath.Base(path), asJSON)
		os.Exit(1)
	}

	e, goals, warnings := elaborateFile(f)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: %v\n", yellow("Warning"), w)
	}

	name := filepath.Base(path)
	if len(goals) == 0 {
		szs.Tag(os.Stdout, szs.InputError, name)
		fmt.Fprintf(os.Stderr, "%s: no conjecture or negated_conjecture input found\n", red("Error"))
		os.Exit(1)
	}

	normalizeGoals(goals, e.Table)

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	it := search.New(goals, e.Gen.Clone(), e.Table, depth)
	found := 0
	for maxResults == 0 || found < maxResults {
		pu, ok, err := it.Next(ctx)
		if err != nil {
			szs.Tag(os.Stdout, szs.Timeout, name)
			fmt.Fprintf(os.Stderr, "%s: %v\n", yellow("search cancelled"), err)
			os.Exit(0)
		}
		if !ok {
			break
		}
		found++
		printPreUnifier(found, pu, e.Table)
	}

	if found == 0 {
		szs.Tag(os.Stdout, szs.GaveUp, name)
		return
	}
	szs.Tag(os.Stdout, szs.Theorem, name)
}

// printPreUnifier renders one pre-unifier: every free variable this
// derivation minted that the substitution actually moves, followed by
// any postponed flex-flex residual equations.
func printPreUnifier(n int, pu search.PreUnifier, table *sig.Table) {
	fmt.Printf("%s #%d:\n", cyan("pre-unifier"), n)
	bindings := 0
	if pu.Gen != nil {
		for _, entry := range pu.Gen.Existing() {
			front := subst.Lookup(pu.Subst, entry.Index)
			if front.Term == nil && front.Bound == entry.Index {
				continue
			}
			bindings++
			if front.Term != nil {
				fmt.Printf("  x%d := %s\n", entry.Index, renderTerm(front.Term, table))
			} else {
				fmt.Printf("  x%d := x%d\n", entry.Index, front.Bound)
			}
		}
	}
	if bindings == 0 && len(pu.Residual) == 0 {
		fmt.Println("  (identity)")
	}
	if len(pu.Residual) > 0 {
		fmt.Printf("  %s %d flex-flex equation(s)\n", yellow("postponed:"), len(pu.Residual))
		for _, r := range pu.Residual {
			fmt.Printf("    %s =? %s\n", renderTerm(r.Left, table), renderTerm(r.Right, table))
		}
	}
}

// renderTerm formats t the way term.Term.String does, except that
// Const/DistinctObject symbols are resolved back to their signature
// names instead of printed as bare cNN/"dNN" keys.
func renderTerm(t term.Term, table *sig.Table) string {
	switch n := t.(type) {
	case term.Const:
		if e, ok := table.Lookup(int(n.Sym)); ok {
			return e.Name
		}
		return n.String()
	case term.DistinctObject:
		if e, ok := table.Lookup(int(n.Sym)); ok {
			return fmt.Sprintf("%q", e.Name)
		}
		return n.String()
	case term.Abs:
		return fmt.Sprintf("(\\%s. %s)", n.ParamTy, renderTerm(n.Body, table))
	case term.TyAbs:
		return fmt.Sprintf("(/\\. %s)", renderTerm(n.Body, table))
	case term.App:
		if len(n.Args) == 0 {
			return renderTerm(n.Head, table)
		}
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			if a.IsType() {
				parts[i] = a.Type.String()
			} else {
				parts[i] = renderTerm(a.Term, table)
			}
		}
		return fmt.Sprintf("%s(%s)", renderTerm(n.Head, table), strings.Join(parts, ", "))
	default:
		return t.String()
	}
}

func countIncludes(f *ast.File) int { return len(f.Includes) }

// reportErrors prints every structured Report, tagging the overall
// outcome with status, either as plain text or (with --json) one JSON
// object per line.
func reportErrors(reports []*errors.Report, status szs.Status, name string, asJSON bool) {
	szs.Tag(os.Stdout, status, name)
	for _, r := range reports {
		if asJSON {
			j, _ := r.ToJSON(true)
			fmt.Println(j)
			continue
		}
		loc := ""
		if r.Span != nil {
			loc = r.Span.Start.String() + ": "
		}
		fmt.Fprintf(os.Stderr, "%s%s %s: %s\n", loc, red(r.Code), r.Phase, r.Message)
	}
}

// loadFile parses path and recursively resolves its include directives,
// merging every included file's (optionally name-filtered) inputs ahead
// of path's own inputs, in source order. visited guards against include
// cycles by absolute path.
func loadFile(path string, visited map[string]bool) (*ast.File, []*errors.Report) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if visited[abs] {
		return &ast.File{Path: path}, nil
	}
	visited[abs] = true

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, []*errors.Report{errors.New(errors.PAR004, fmt.Sprintf("cannot read %q: %v", path, err), nil)}
	}

	f, reports := parser.ParseString(string(src), path)
	if len(reports) > 0 {
		return f, reports
	}

	merged := &ast.File{Path: path, Pos: f.Pos, Includes: f.Includes}
	dir := filepath.Dir(path)
	for _, inc := range f.Includes {
		incFile, incReports := loadFile(resolveInclude(inc.Path, dir), visited)
		if len(incReports) > 0 {
			return merged, incReports
		}
		if incFile != nil {
			merged.Inputs = append(merged.Inputs, filterSelection(incFile.Inputs, inc.Selection)...)
		}
	}
	merged.Inputs = append(merged.Inputs, f.Inputs...)
	return merged, nil
}

// resolveInclude looks for name relative to the including file's
// directory first, falling back to $TPTP_DIR (the conventional root of
// a TPTP distribution's Axioms/ tree) if the file isn't found alongside
// the including file.
func resolveInclude(name, dir string) string {
	if filepath.IsAbs(name) {
		return name
	}
	candidate := filepath.Join(dir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	if root := os.Getenv("TPTP_DIR"); root != "" {
		return filepath.Join(root, name)
	}
	return candidate
}

func filterSelection(inputs []*ast.Input, selection []string) []*ast.Input {
	if len(selection) == 0 {
		return inputs
	}
	want := make(map[string]bool, len(selection))
	for _, s := range selection {
		want[s] = true
	}
	out := make([]*ast.Input, 0, len(inputs))
	for _, in := range inputs {
		if want[in.Name] {
			out = append(out, in)
		}
	}
	return out
}

// elaborateFile walks every Input in order, registering `type` and
// `definition` roles into the signature table, collecting every
// conjecture/negated_conjecture as a unification goal, and best-effort
// elaborating everything else (axioms, hypotheses, lemmas) purely for
// its side effect of registering referenced symbols — the clause/FOL
// reasoning layer that would actually consume axioms is an external
// collaborator, out of scope for this kernel.
func elaborateFile(f *ast.File) (*elab.Elaborator, []huet.Equation, []error) {
	e := elab.New()
	var goals []huet.Equation
	var warnings []error

	for _, in := range f.Inputs {
		switch in.RoleName {
		case ast.RoleType:
			td, ok := in.Formula.(*ast.TypeDecl)
			if !ok {
				warnings = append(warnings, fmt.Errorf("%s: type role without a type declaration body", in.Name))
				continue
			}
			if err := e.DeclareType(td); err != nil {
				warnings = append(warnings, err)
			}

		case ast.RoleDefinition:
			if err := e.DeclareDefinition(in); err != nil {
				warnings = append(warnings, err)
			}

		case ast.RoleConjecture, ast.RoleNegatedConjecture:
			g, err := e.ElabGoal(in)
			if err != nil {
				warnings = append(warnings, err)
				continue
			}
			goals = append(goals, g.Eq)

		default:
			// Axioms and the like: elaborate for the side effect of
			// registering their symbols. A formula shape ElabGoal can't
			// reduce to an equation-or-atom (general conjunctions,
			// disjunctions, ...) is simply not registered further here;
			// that is expected, not an error.
			if _, err := e.ElabGoal(in); err != nil {
				continue
			}
		}
	}
	return e, goals, warnings
}

// normalizeGoals reduces every goal's two sides to beta-normal,
// delta-expanded, eta-long form in place before the search driver sees
// them: delta-expansion unfolds definition-role constants declared via
// DeclareDefinition, and eta-expansion satisfies the search driver's
// requirement that its initial configuration already be eta-long.
func normalizeGoals(goals []huet.Equation, table *sig.Table) {
	for i := range goals {
		goals[i].Left = normal.Normalize(goals[i].Left, table)
		goals[i].Right = normal.Normalize(goals[i].Right, table)
	}
}
