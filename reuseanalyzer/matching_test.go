// Copyright 2024 The NAQMap Authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package reuseanalyzer

import (
	"math/rand"
	"testing"
)

// fordFulkersonMaxMatching is a slow, independently-written
// reference used only to check HopcroftKarp's cardinality.
func fordFulkersonMaxMatching(adj [][]int, numRight int) int {
	matchRight := make([]int, numRight)
	for i := range matchRight {
		matchRight[i] = -1
	}
	var tryKuhn func(l int, visited []bool) bool
	tryKuhn = func(l int, visited []bool) bool {
		for _, r := range adj[l] {
			if visited[r] {
				continue
			}
			visited[r] = true
			if matchRight[r] == -1 || tryKuhn(matchRight[r], visited) {
				matchRight[r] = l
				return true
			}
		}
		return false
	}
	count := 0
	for l := range adj {
		visited := make([]bool, numRight)
		if tryKuhn(l, visited) {
			count++
		}
	}
	return count
}

func randomBipartite(r *rand.Rand, nLeft, nRight int, p float64) [][]int {
	adj := make([][]int, nLeft)
	for l := 0; l < nLeft; l++ {
		for rr := 0; rr < nRight; rr++ {
			if r.Float64() < p {
				adj[l] = append(adj[l], rr)
			}
		}
	}
	return adj
}

func TestMatchingMaximality(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		nLeft := 1 + r.Intn(12)
		nRight := 1 + r.Intn(12)
		adj := randomBipartite(r, nLeft, nRight, 0.3)
		matchLeft, matchRight := HopcroftKarp(adj, nRight)

		got := 0
		for _, r := range matchLeft {
			if r >= 0 {
				got++
			}
		}
		want := fordFulkersonMaxMatching(adj, nRight)
		if got != want {
			t.Fatalf("trial %d: HopcroftKarp cardinality %d != reference %d", trial, got, want)
		}
		// matchLeft and matchRight must agree with each other.
		for l, rr := range matchLeft {
			if rr < 0 {
				continue
			}
			if matchRight[rr] != l {
				t.Fatalf("trial %d: matchLeft[%d]=%d but matchRight[%d]=%d", trial, l, rr, rr, matchRight[rr])
			}
		}
	}
}

func TestMatchingDeterminism(t *testing.T) {
	adj := [][]int{
		{0, 1},
		{1, 2},
		{0, 2},
		{2},
	}
	matchLeft1, matchRight1 := HopcroftKarp(adj, 3)
	matchLeft2, matchRight2 := HopcroftKarp(adj, 3)
	for i := range matchLeft1 {
		if matchLeft1[i] != matchLeft2[i] {
			t.Fatalf("matchLeft not deterministic at %d: %d != %d", i, matchLeft1[i], matchLeft2[i])
		}
	}
	for i := range matchRight1 {
		if matchRight1[i] != matchRight2[i] {
			t.Fatalf("matchRight not deterministic at %d: %d != %d", i, matchRight1[i], matchRight2[i])
		}
	}
}

func TestMatchInvertedFlag(t *testing.T) {
	adj := [][]int{
		{0, 1},
		{1},
	}
	byRight := Match(adj, 2, false)
	byLeft := Match(adj, 2, true)
	for l, r := range byLeft {
		if r < 0 {
			continue
		}
		if byRight[r] != l {
			t.Fatalf("inverted and non-inverted matchings disagree: left %d -> right %d, but byRight[%d] = %d", l, r, r, byRight[r])
		}
	}
}
