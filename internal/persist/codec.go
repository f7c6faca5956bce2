// Package persist reads and writes an emotional map as line-oriented text:
//
//	NODE <name> <valence> <baseline>
//	TIP <name> "<text>"
//	EDGE <from> <to> <weight> "<procedure>"
//
// Quoted fields escape '"' and '\' with a backslash. Blank lines and lines
// starting with '#' are ignored, as are unknown record kinds.
package persist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/alexanderramin/emopath/internal/graph"
)

// DefaultFile is where the map lives between runs.
const DefaultFile = "emotion_data.txt"

const (
	kindNode = "NODE"
	kindTip  = "TIP"
	kindEdge = "EDGE"

	defaultEdgeWeight = 1.0
	maxLineBytes      = 1 << 20
)

// DecodeReport summarises a decode pass.
type DecodeReport struct {
	Nodes   int
	Tips    int
	Edges   int
	Refused int // EDGE records rejected by the admission policy
	Skipped int // malformed or unknown records
}

// Encode writes g in store order: every node followed by its tips, then one
// EDGE line per inserted pair in the forward direction.
func Encode(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, n := range g.Nodes() {
		fmt.Fprintf(bw, "%s %s %.3f %.3f\n", kindNode, n.Name(), n.Valence(), n.Baseline())
		for _, tip := range n.Tips() {
			fmt.Fprintf(bw, "%s %s %s\n", kindTip, n.Name(), quote(tip))
		}
	}
	for _, n := range g.Nodes() {
		for _, e := range n.Edges() {
			if e.Mirror() {
				continue
			}
			fmt.Fprintf(bw, "%s %s %s %.3f %s\n", kindEdge, n.Name(), e.To.Name(), e.Weight, quote(e.Procedure))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing map: %w", err)
	}
	return nil
}

// Decode applies every record in r to g. Malformed records, including lines
// longer than maxLineBytes, are skipped; only a read failure returns an
// error. EDGE records go through graph.AddEdge, so the admission policy
// holds for loaded data too.
func Decode(r io.Reader, g *graph.Graph) (DecodeReport, error) {
	var rep DecodeReport
	br := bufio.NewReaderSize(r, 64*1024)

	for {
		raw, tooLong, err := readLine(br)
		if tooLong {
			rep.Skipped++
		} else if len(raw) > 0 {
			decodeLine(g, strings.TrimSpace(string(raw)), &rep)
		}
		if errors.Is(err, io.EOF) {
			return rep, nil
		}
		if err != nil {
			return rep, fmt.Errorf("reading map: %w", err)
		}
	}
}

// readLine returns the next line. A line over maxLineBytes is consumed and
// dropped, reported through tooLong.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes {
				line, tooLong = nil, true
			} else {
				line = append(line, chunk...)
			}
		}
		if !errors.Is(err, bufio.ErrBufferFull) {
			return line, tooLong, err
		}
	}
}

func decodeLine(g *graph.Graph, line string, rep *DecodeReport) {
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	kind, rest := cutToken(line)
	switch kind {
	case kindNode:
		if decodeNode(g, rest) {
			rep.Nodes++
			return
		}
	case kindTip:
		if decodeTip(g, rest) {
			rep.Tips++
			return
		}
	case kindEdge:
		if added, ok := decodeEdge(g, rest); ok {
			if added {
				rep.Edges++
			} else {
				rep.Refused++
			}
			return
		}
	}
	rep.Skipped++
}

func decodeNode(g *graph.Graph, rest string) bool {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return false
	}
	n := g.AddNode(fields[0], domain.LoadDefaults.Valence, domain.LoadDefaults.Baseline)
	valence, baseline := n.Valence(), n.Baseline()
	if len(fields) > 1 {
		valence = parseFloatOr(fields[1], domain.LoadDefaults.Valence)
	}
	if len(fields) > 2 {
		baseline = parseFloatOr(fields[2], domain.LoadDefaults.Baseline)
	}
	n.SetScores(valence, baseline)
	return true
}

func decodeTip(g *graph.Graph, rest string) bool {
	name, tail := cutToken(rest)
	if name == "" {
		return false
	}
	text, ok := unquote(tail)
	if !ok {
		return false
	}
	g.AddTip(name, text)
	return true
}

func decodeEdge(g *graph.Graph, rest string) (added, ok bool) {
	from, tail := cutToken(rest)
	to, tail := cutToken(tail)
	if from == "" || to == "" {
		return false, false
	}
	weight := defaultEdgeWeight
	if tok, after := cutToken(tail); tok != "" && !strings.HasPrefix(tok, `"`) {
		weight = parseFloatOr(tok, defaultEdgeWeight)
		tail = after
	}
	procedure, _ := unquote(tail)
	return g.AddEdge(from, to, weight, procedure), true
}

// cutToken splits s at the first run of whitespace.
func cutToken(s string) (tok, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], " \t")
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// unquote reads the quoted string starting at the first '"' in s. A missing
// closing quote takes the rest of the line.
func unquote(s string) (string, bool) {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return "", false
	}
	var b strings.Builder
	for i := start + 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			b.WriteByte(s[i])
		case c == '"':
			return b.String(), true
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), true
}
