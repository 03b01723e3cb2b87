// Command nar is a reference driver for the reasoning kernel: a REPL and
// batch runner generalizing korel/cmd/chat-cli's structure (flag-based
// wiring, an interactive bufio.Scanner loop, a one-shot non-interactive
// mode) to NAL input lines and reasoning cycles instead of search queries.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/config"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/narsese"
	"github.com/cognicore/nars/pkg/nars/persist/sqlite"
	"github.com/cognicore/nars/pkg/nars/record"
	"github.com/cognicore/nars/pkg/nars/rules/matching"
	"github.com/cognicore/nars/pkg/nars/rules/structural"
	"github.com/cognicore/nars/pkg/nars/rules/syllogistic"
	"github.com/cognicore/nars/pkg/nars/trace"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// defaultJudgmentTruth matches narsese.Parse's own fallback for a
// judgment/goal line that omits "%f;c%", since that default lives
// unexported inside the parser and a driver constructing Sentences by
// hand needs the same convention.
var defaultJudgmentTruth = truth.Value{Frequency: 1, Confidence: 0.9}

// inputBudget is the fixed attention value given to every task read from
// a -narsese file or typed at the REPL; a real driver contract would let
// Narsese syntax carry its own budget tag, but spec.md's surface grammar
// (narsese.Parse) only covers content/punctuation/truth.
var inputBudget = budget.Value{Priority: 0.8, Durability: 0.8, Quality: 0.9}

func main() {
	var (
		configPath  = flag.String("config", "", "YAML parameter file (optional, overrides Default())")
		narsesePath = flag.String("narsese", "", "File of Narsese input lines to run non-interactively")
		cycles      = flag.Int("cycles", 0, "Run N cycles after loading -narsese, then exit (0 = interactive REPL)")
		traceOn     = flag.Bool("trace", false, "Enable the golang.org/x/net/trace event recorder")
		auditPath   = flag.String("audit", "", "sqlite path for the persistence recorder (optional)")
	)
	flag.Parse()

	params, err := loadParams(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	m := memory.New(params)
	m.SetConceptFirer(composedFirer)
	m.SetOutput(func(s string) { fmt.Println(s) })

	cleanup, err := wireRecorder(m, *traceOn, *auditPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if *narsesePath != "" {
		if err := loadNarseseFile(m, *narsesePath); err != nil {
			log.Fatal(err)
		}
	}

	if *cycles > 0 {
		for i := 0; i < *cycles; i++ {
			m.Cycle()
		}
		return
	}
	if *narsesePath != "" {
		// A -narsese file with no -cycles still runs once so loaded
		// judgments settle into concepts before the process exits.
		m.Cycle()
		return
	}

	runREPL(m)
}

// composedFirer is the single ConceptFirer every concept fires through:
// a nil task-link means immediateProcess's direct-processing path (no
// second premise to pair against), routed to matching.FireDirect for
// revision-against-existing-belief and question answering; a non-nil
// task-link/term-link pair came out of processConcept's two-premise step,
// tried as syllogistic when a CurrentBelief() is resolved. Both paths then
// also run structural.Dispatch off the task's own shape.
func composedFirer(m *memory.Memory, c *entity.Concept, taskLink *entity.TaskLink, termLink *entity.TermLink) {
	if taskLink == nil {
		matching.FireDirect(m, c)
		structural.Dispatch(m, c, taskLink, termLink)
		return
	}
	if m.CurrentBelief() != nil {
		syllogistic.Fire(m, c, taskLink, termLink)
	}
	structural.Dispatch(m, c, taskLink, termLink)
}

func loadParams(path string) (config.Parameters, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func wireRecorder(m *memory.Memory, traceOn bool, auditPath string) (func(), error) {
	var recorders []record.Recorder
	cleanup := func() {}

	if traceOn {
		tr := trace.New("nar")
		recorders = append(recorders, tr)
		prev := cleanup
		cleanup = func() { prev(); tr.Finish() }
	}
	if auditPath != "" {
		rec, err := sqlite.Open(context.Background(), auditPath)
		if err != nil {
			return nil, fmt.Errorf("open audit db: %w", err)
		}
		recorders = append(recorders, rec)
		prev := cleanup
		cleanup = func() { prev(); rec.Close() }
	}

	switch len(recorders) {
	case 0:
		return cleanup, nil
	case 1:
		m.SetRecorder(recorders[0])
	default:
		m.SetRecorder(multiRecorder(recorders))
	}
	return cleanup, nil
}

// multiRecorder fans every notification out to each installed recorder,
// needed only when both -trace and -audit are given at once.
type multiRecorder []record.Recorder

func (rs multiRecorder) IsActive() bool {
	for _, r := range rs {
		if r.IsActive() {
			return true
		}
	}
	return false
}
func (rs multiRecorder) OnCycleStart(clock int64) {
	for _, r := range rs {
		r.OnCycleStart(clock)
	}
}
func (rs multiRecorder) OnCycleEnd(clock int64) {
	for _, r := range rs {
		r.OnCycleEnd(clock)
	}
}
func (rs multiRecorder) OnConceptNew(term string) {
	for _, r := range rs {
		r.OnConceptNew(term)
	}
}
func (rs multiRecorder) OnTaskAdd(task, reason string) {
	for _, r := range rs {
		r.OnTaskAdd(task, reason)
	}
}
func (rs multiRecorder) OnTaskRemove(task, reason string) {
	for _, r := range rs {
		r.OnTaskRemove(task, reason)
	}
}
func (rs multiRecorder) Append(message string) {
	for _, r := range rs {
		r.Append(message)
	}
}

var _ record.Recorder = multiRecorder(nil)

func loadNarseseFile(m *memory.Memory, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read narsese file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := feedLine(m, line); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func feedLine(m *memory.Memory, line string) error {
	parsed, err := narsese.Parse(line)
	if err != nil {
		return err
	}
	stmp := m.NewInputStamp(m.GetTime())
	var sentence entity.Sentence
	switch parsed.Punctuation {
	case entity.Judgment:
		tv := parsed.Truth
		if !parsed.HasTruth {
			tv = defaultJudgmentTruth
		}
		sentence = entity.NewJudgment(parsed.Content, tv, stmp)
	case entity.Goal:
		tv := parsed.Truth
		if !parsed.HasTruth {
			tv = defaultJudgmentTruth
		}
		sentence = entity.NewGoal(parsed.Content, tv, stmp)
	case entity.Question:
		sentence = entity.NewQuestion(parsed.Content, stmp)
	case entity.Quest:
		sentence = entity.NewQuest(parsed.Content, stmp)
	}
	m.InputTask(entity.NewInputTask(sentence, inputBudget))
	return nil
}

// runREPL mirrors chat-cli's interactive loop: read a line, print a
// prompt, exit cleanly on EOF. A blank line runs one cycle; a line that
// parses as a bare integer runs that many cycles; anything else is fed
// to the reasoner as a Narsese input sentence.
func runREPL(m *memory.Memory) {
	fmt.Println("===========================================")
	fmt.Println("  nar - a non-axiomatic reasoner")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Enter Narsese sentences, a blank line to step one cycle,")
	fmt.Println("or a number to run that many cycles. Ctrl+D to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			m.Cycle()
		default:
			if n, err := strconv.Atoi(line); err == nil {
				for i := 0; i < n; i++ {
					m.Cycle()
				}
				continue
			}
			if err := feedLine(m, line); err != nil {
				fmt.Println("Error:", err)
			}
		}
	}

	fmt.Println("\nGoodbye!")
}
