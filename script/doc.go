/*
Package script runs scripted scenarios against dynamic arrays.

A scenario is a YAML document naming an initial set of values and a list of
steps. Each step performs one vector operation and may state expectations about
the outcome:

    name: insert-erase
    init: [1, 2, 4]
    steps:
      - op: insert
        value: 3
        pos: 2
        expect:
          values: [1, 2, 3, 4]
      - op: pop_back
      - op: erase_between
        pos: 0
        end: 9
      - op: pop_front
        error: empty

Running a scenario yields a report with snapshots of the vector, taken at every
`print` step. The package ships a set of built-in scenarios which serve as a smoke
test of package vector.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dynarray.script'.
func tracer() tracing.Trace {
	return tracing.Select("dynarray.script")
}
