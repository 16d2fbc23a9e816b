package route

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Home is the name of the planet every route starts and ends at.
const Home = "SOL"

// ErrMalformedPlanet is returned when a line does not read as "NAME (x, y, z, w)".
var ErrMalformedPlanet = errors.New("malformed planet")

// Point is a location in four-dimensional space, held in single precision.
type Point [4]float32

// NewPoint builds a Point, replacing NaN coordinates with zero.
func NewPoint(x, y, z, w float32) Point {
	p := Point{x, y, z, w}
	for i, c := range p {
		if c != c {
			p[i] = 0
		}
	}
	return p
}

// Distance returns the Euclidean distance between p and q. Every step is
// rounded to float32, so two distances that are equal in single precision tie.
func (p Point) Distance(q Point) float32 {
	var sum float32
	for i := range p {
		d := p[i] - q[i]
		// The conversion keeps the compiler from fusing into a multiply-add.
		sum += float32(d * d)
	}
	return float32(math.Sqrt(float64(sum)))
}

// Planet is a named Point.
type Planet struct {
	Name     string `json:"name"`
	Location Point  `json:"location"`
}

// ParsePlanet reads a planet in the form "BETA VOLANTIS (3.4, -44.0, -98.5, 0.16)".
func ParsePlanet(s string) (Planet, error) {
	name, rest, ok := strings.Cut(s, "(")
	if !ok {
		return Planet{}, fmt.Errorf("%w: %q", ErrMalformedPlanet, s)
	}
	coords := strings.Split(strings.Trim(strings.TrimSpace(rest), ")"), ",")
	if len(coords) != 4 {
		return Planet{}, fmt.Errorf("%w: %q has %d coordinates", ErrMalformedPlanet, s, len(coords))
	}
	var v [4]float32
	for i, c := range coords {
		f, err := strconv.ParseFloat(strings.TrimSpace(c), 32)
		if err != nil {
			return Planet{}, fmt.Errorf("%w: %q: %w", ErrMalformedPlanet, s, err)
		}
		v[i] = float32(f)
	}
	return Planet{
		Name:     strings.TrimSpace(name),
		Location: NewPoint(v[0], v[1], v[2], v[3]),
	}, nil
}

// ParseMap reads one planet per line, skipping blank lines.
func ParseMap(r io.Reader) ([]Planet, error) {
	var planets []Planet
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := ParsePlanet(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		planets = append(planets, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	return planets, nil
}

// Plan orders planets by repeatedly visiting the closest unvisited one, starting at Home.
// Ties go to the planet listed first.
func Plan(planets []Planet) []Planet {
	remaining := make([]Planet, len(planets))
	copy(remaining, planets)

	ordered := make([]Planet, 0, len(planets))
	prev := Planet{Name: Home}
	for len(remaining) > 0 {
		best := 0
		bestDist := prev.Location.Distance(remaining[0].Location)
		for i := 1; i < len(remaining); i++ {
			if d := prev.Location.Distance(remaining[i].Location); d < bestDist {
				best, bestDist = i, d
			}
		}
		prev = remaining[best]
		ordered = append(ordered, prev)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return ordered
}

// PlanRoute renders Plan as newline separated names framed by Home.
func PlanRoute(planets []Planet) string {
	var b strings.Builder
	b.WriteString(Home)
	b.WriteByte('\n')
	for _, p := range Plan(planets) {
		b.WriteString(p.Name)
		b.WriteByte('\n')
	}
	b.WriteString(Home)
	return b.String()
}

// Normalize upper-cases a route and drops every character that is neither a
// letter nor a line break, so that planet names like "Tau Ceti-2" still reduce.
func Normalize(route string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			return unicode.ToUpper(r)
		default:
			return -1
		}
	}, route)
}
