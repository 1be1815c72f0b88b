// Package config loads treesearch run configurations.
//
// A configuration is a YAML document naming the algorithm, an optional depth
// limit, logging settings and the problem to solve:
//
//	algorithm: dfs          # dfs | bfs
//	max_depth: 0            # 0 = unlimited
//	log:
//	  level: info           # debug | info | warn | error
//	  format: text          # text | json
//	problem:
//	  kind: gridmaze        # gridmaze | mapcoloring
//	  params:
//	    rows: ["S.G"]
//	    moves: [right, left]
//
// The params block is free-form; DecodeParams maps it onto the typed params
// of the chosen problem (gridmaze.Params, mapcoloring.Params).
//
// A few ready-made configurations are embedded and available through Preset.
package config
