// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/starlane/config"
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/dijkstra"
	"github.com/katalvlaran/starlane/strategy"
)

// query is one question asked of the graph.
type query struct {
	route     string // empty for -algo queries
	algorithm string
	from, to  int
}

// queries returns what to answer: the -route, the -algo query, or every
// route of the loaded model.
func (a *App) queries(model *config.Model) ([]query, error) {
	switch {
	case a.cfg.Route != "":
		if model == nil {
			return nil, fmt.Errorf("unknown route %q", a.cfg.Route)
		}
		r, ok := model.Route(a.cfg.Route)
		if !ok {
			return nil, fmt.Errorf("unknown route %q", a.cfg.Route)
		}

		return []query{fromRoute(r)}, nil
	case a.cfg.Algorithm != "":
		return []query{{algorithm: a.cfg.Algorithm, from: a.cfg.From, to: a.cfg.To}}, nil
	case model != nil:
		qs := make([]query, len(model.Routes))
		for i, r := range model.Routes {
			qs[i] = fromRoute(r)
		}

		return qs, nil
	}

	return nil, nil
}

func fromRoute(r config.Route) query {
	return query{route: r.Name, algorithm: r.Algorithm, from: r.From, to: r.To}
}

// answer runs q against g and formats the result as one line.
func answer(g core.Graph[string], q query) (string, error) {
	var b strings.Builder
	if q.route != "" {
		fmt.Fprintf(&b, "route %s: ", q.route)
	}
	b.WriteString(q.algorithm)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(q.from))
	if q.to != Unset {
		b.WriteString("->")
		b.WriteString(strconv.Itoa(q.to))
	}
	b.WriteString(": ")

	if q.algorithm == config.AlgorithmPath {
		route := strategy.PathFinder[string]{}.FindShortestPath(g, q.from, q.to)
		if route == nil {
			b.WriteString("no path")
			return b.String(), nil
		}
		fmt.Fprintf(&b, "%s (weight %d)", strings.Join(payloads(g, route), " -> "), dijkstra.PathWeight[string](g, route))

		return b.String(), nil
	}

	var visited []string
	s, err := strategy.New[string](q.algorithm, func(v core.Vertex[string]) {
		visited = append(visited, v.Payload)
	})
	if err != nil {
		return "", err
	}
	result := s.Run(g, q.from, q.to)
	switch {
	case q.algorithm == strategy.NameDijkstra && result == dijkstra.NoPath:
		b.WriteString("no path")
	case q.algorithm == strategy.NameDijkstra:
		fmt.Fprintf(&b, "distance %d", result)
	default:
		fmt.Fprintf(&b, "visited %d", result)
		if len(visited) > 0 {
			b.WriteString(" [")
			b.WriteString(strings.Join(visited, " "))
			b.WriteByte(']')
		}
	}

	return b.String(), nil
}

// payloads maps vertex indices to their payloads.
func payloads(g core.Graph[string], indices []int) []string {
	vs := g.Vertices()
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = vs[idx].Payload
	}

	return out
}
