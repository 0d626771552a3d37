// Package suite loads YAML files of operation cases and evaluates them.
//
// A suite file lists cases, each naming an operation from the ops registry,
// its arguments in the node YAML notation and the expected result:
//
//	version: "1"
//	cases:
//	  - name: flatten-two
//	    op: flattenDepth
//	    args: [[1, 2, [3, 4], [[[5]]]], 2]
//	    want: [1, 2, 3, 4, [5]]
//	  - name: bad-key
//	    op: tupleToNestedObject
//	    args: [[a, 1], leaf]
//	    wantErr: true
//
// Cases are independent and are evaluated concurrently by Runner.
package suite
