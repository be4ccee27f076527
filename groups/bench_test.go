package groups_test

import (
	"fmt"
	"testing"

	"github.com/1000RR/connectionTopology/groups"
	"github.com/1000RR/connectionTopology/ident"
)

// BenchmarkReduce_Chain reduces a long chain of pairwise-overlapping
// statements, the worst case for transitive merging: every statement links
// to the next, collapsing into a single group.
func BenchmarkReduce_Chain(b *testing.B) {
	const n = 2000
	cls := ident.NewClassifier([]string{"A"}, []string{"G"})
	statements := make([][]string, n)
	for i := 0; i < n; i++ {
		statements[i] = []string{
			fmt.Sprintf("A%d", i+1),
			fmt.Sprintf("A%d", i+2),
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		groups.Reduce(statements, cls)
	}
}

// BenchmarkReduce_Disjoint reduces fully disjoint statements: no merging,
// all cost in registration and sorting.
func BenchmarkReduce_Disjoint(b *testing.B) {
	const n = 2000
	cls := ident.NewClassifier([]string{"A"}, []string{"G"})
	statements := make([][]string, n)
	for i := 0; i < n; i++ {
		statements[i] = []string{fmt.Sprintf("A%d", 2*i+1), fmt.Sprintf("A%d", 2*i+2)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		groups.Reduce(statements, cls)
	}
}
