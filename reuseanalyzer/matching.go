// Copyright (C) 2024 The NAQMap Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package reuseanalyzer reduces qubit-reuse selection to
// maximum bipartite matching, using the Hopcroft-Karp
// algorithm (Hopcroft & Karp, SIAM J. Comp. 2(4), 1973),
// which runs in O(E*sqrt(V)).
package reuseanalyzer

const infinite = 1 << 30

// HopcroftKarp computes a maximum-cardinality matching for
// the bipartite graph whose left vertices are 0..len(adj)-1
// and whose right vertices are 0..numRight-1, with adj[l]
// listing l's right-side neighbors. It returns matchLeft
// (matchLeft[l] is l's matched right vertex, or -1) and
// matchRight (its inverse). The result is deterministic for
// a fixed vertex order and fixed adjacency-list order.
func HopcroftKarp(adj [][]int, numRight int) (matchLeft, matchRight []int) {
	nLeft := len(adj)
	matchLeft = make([]int, nLeft)
	matchRight = make([]int, numRight)
	for i := range matchLeft {
		matchLeft[i] = -1
	}
	for i := range matchRight {
		matchRight[i] = -1
	}
	dist := make([]int, nLeft)

	bfs := func() bool {
		queue := make([]int, 0, nLeft)
		for l := 0; l < nLeft; l++ {
			if matchLeft[l] == -1 {
				dist[l] = 0
				queue = append(queue, l)
			} else {
				dist[l] = infinite
			}
		}
		foundAugmentingPath := false
		for i := 0; i < len(queue); i++ {
			l := queue[i]
			for _, r := range adj[l] {
				rl := matchRight[r]
				if rl == -1 {
					foundAugmentingPath = true
				} else if dist[rl] == infinite {
					dist[rl] = dist[l] + 1
					queue = append(queue, rl)
				}
			}
		}
		return foundAugmentingPath
	}

	var dfs func(l int) bool
	dfs = func(l int) bool {
		for _, r := range adj[l] {
			rl := matchRight[r]
			if rl == -1 || (dist[rl] == dist[l]+1 && dfs(rl)) {
				matchLeft[l] = r
				matchRight[r] = l
				return true
			}
		}
		dist[l] = infinite
		return false
	}

	for bfs() {
		for l := 0; l < nLeft; l++ {
			if matchLeft[l] == -1 {
				dfs(l)
			}
		}
	}
	return matchLeft, matchRight
}

// Match runs HopcroftKarp over adj (a left->rights adjacency
// list with otherSize right vertices) and returns the
// matching indexed by the side the caller wants: inverted
// false returns match[right] = left (the default
// direction); inverted true returns match[left] =
// right, letting a caller obtain both matching directions
// from the same adjacency list without rebuilding the graph.
func Match(adj [][]int, otherSize int, inverted bool) []int {
	matchLeft, matchRight := HopcroftKarp(adj, otherSize)
	if inverted {
		return matchLeft
	}
	return matchRight
}
