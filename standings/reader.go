package standings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader reads consecutive divisions from a text stream.
//
// The input is a stream of whitespace separated tokens: a team count, then
// per team a name, wins, remaining and n games-left values. Records may wrap
// across lines or share one. A line holding nothing but a positive integer
// always starts a new division; that is how the Reader recovers from a
// malformed division. After a *ParseError it skips ahead to such a line, so
// the following divisions are still read.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	fields  []string
	pos     int
	ordinal int
}

// token is one input word and where it sits in its line.
type token struct {
	text  string
	line  int
	first bool // first token on its line
	lone  bool // only token on its line
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{sc: sc}
}

// Next returns the next division. It returns io.EOF when the stream holds
// no further divisions, a *ParseError for a malformed division (after which
// Next may be called again), or the underlying read error.
func (r *Reader) Next() (*Division, error) {
	tok, err := r.next()
	if err != nil {
		return nil, err
	}
	r.ordinal++
	ordinal := r.ordinal

	n, err := parseHeader(tok.text)
	if err != nil {
		r.resync()
		return nil, &ParseError{Division: ordinal, Line: tok.line, Err: err}
	}

	teams := make([]Team, 0, min(n, 64))
	games := make([][]int, 0, min(n, 64))
	for i := 0; i < n; i++ {
		team, row, err := r.readTeam(ordinal, n)
		var pe *ParseError
		if errors.As(err, &pe) {
			r.resync()
			return nil, err
		}
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
		games = append(games, row)
	}

	d, err := NewDivision(teams, games)
	if err != nil {
		return nil, &ParseError{Division: ordinal, Line: tok.line, Err: err}
	}
	return d, nil
}

// readTeam decodes "<name> <wins> <remaining> <g_1> ... <g_n>".
// A division header in place of the name means the division listed fewer
// teams than announced; one at the start of a line in place of a number
// means the record is short. Either way the header stays unread.
func (r *Reader) readTeam(division, n int) (Team, []int, error) {
	name, err := r.next()
	if errors.Is(err, io.EOF) {
		return Team{}, nil, &ParseError{Division: division, Line: r.line, Err: ErrTruncated}
	}
	if err != nil {
		return Team{}, nil, err
	}
	if isHeader(name) {
		r.unread()
		return Team{}, nil, &ParseError{Division: division, Line: name.line, Err: ErrTruncated}
	}

	nums := make([]int, 2+n)
	for k := range nums {
		tok, err := r.next()
		if errors.Is(err, io.EOF) {
			return Team{}, nil, &ParseError{Division: division, Line: r.line, Err: ErrTruncated}
		}
		if err != nil {
			return Team{}, nil, err
		}
		v, convErr := strconv.Atoi(tok.text)
		if tok.first && (convErr != nil || isHeader(tok)) {
			r.unread()
			return Team{}, nil, &ParseError{
				Division: division,
				Line:     name.line,
				Err:      fmt.Errorf("%w: got %d, want %d", ErrTokenCount, 1+k, 3+n),
			}
		}
		if convErr != nil {
			return Team{}, nil, &ParseError{Division: division, Line: tok.line,
				Err: fmt.Errorf("%w: %q", ErrNotNumeric, tok.text)}
		}
		if v < 0 {
			return Team{}, nil, &ParseError{Division: division, Line: tok.line,
				Err: fmt.Errorf("%w: %d", ErrNegative, v)}
		}
		nums[k] = v
	}
	return Team{Name: name.text, Wins: nums[0], Remaining: nums[1]}, nums[2:], nil
}

// next returns the next token, reading lines as needed.
func (r *Reader) next() (token, error) {
	for r.pos >= len(r.fields) {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return token{}, fmt.Errorf("standings: read: %w", err)
			}
			return token{}, io.EOF
		}
		r.line++
		r.fields, r.pos = strings.Fields(r.sc.Text()), 0
	}
	t := token{
		text:  r.fields[r.pos],
		line:  r.line,
		first: r.pos == 0,
		lone:  len(r.fields) == 1,
	}
	r.pos++
	return t, nil
}

// unread steps back over the token just returned by next.
func (r *Reader) unread() { r.pos-- }

// resync skips tokens up to the next division header and leaves it unread.
func (r *Reader) resync() {
	for {
		tok, err := r.next()
		if err != nil {
			return
		}
		if isHeader(tok) {
			r.unread()
			return
		}
	}
}

func isHeader(t token) bool {
	if !t.lone {
		return false
	}
	_, err := parseHeader(t.text)
	return err == nil
}

func parseHeader(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, text)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d teams", ErrEmptyDivision, n)
	}
	return n, nil
}

// ReadAll reads every division in r. Well-formed divisions are returned in
// stream order; errors for malformed ones are joined into err.
func ReadAll(r io.Reader) ([]*Division, error) {
	rd := NewReader(r)
	var (
		out  []*Division
		errs []error
	)
	for {
		d, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var pe *ParseError
		if errors.As(err, &pe) {
			errs = append(errs, err)
			continue
		}
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, errors.Join(errs...)
}

// Parse reads exactly one division from s.
func Parse(s string) (*Division, error) {
	d, err := NewReader(strings.NewReader(s)).Next()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDivision
	}
	return d, err
}
