// Package configs loads pattern suites from CUE files. A suite file
// declares named batches of patterns for a single run:
//
//	suites: [{
//		name: "phones"
//		limit: 8
//		patterns: ["\\d{3}-\\d{4}"]
//	}]
package configs

import (
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Suite is a named batch of patterns to generate test strings for.
type Suite struct {
	Name     string   `json:"name"`
	Limit    int      `json:"limit"`
	Patterns []string `json:"patterns"`
}

const schemaSrc = `
suites: [...{
	name: string
	limit: int & >0 | *16
	patterns: [...string]
}]
`

type Loader struct {
	getRoot func() (cue.Value, error)
}

func NewLoader(filePath string) Loader {
	return Loader{
		getRoot: sync.OnceValues(func() (cue.Value, error) {
			ctx := cuecontext.New()

			schema := ctx.CompileString("close({" + schemaSrc + "})")
			if err := schema.Err(); err != nil {
				return cue.Value{}, err
			}

			content, err := os.ReadFile(filePath)
			if err != nil {
				return cue.Value{}, err
			}
			value := ctx.CompileBytes(
				content,
				cue.Filename(filePath),
			)
			if err := value.Err(); err != nil {
				return cue.Value{}, err
			}

			unified := schema.Unify(value)
			if err := unified.Validate(); err != nil {
				return cue.Value{}, err
			}
			return unified, nil
		}),
	}
}

// Suites decodes every suite declared in the file, with schema defaults
// applied.
func (l Loader) Suites() ([]Suite, error) {
	root, err := l.getRoot()
	if err != nil {
		return nil, err
	}

	value := root.LookupPath(cue.ParsePath("suites"))
	if err := value.Err(); err != nil {
		return nil, err
	}

	var suites []Suite
	if err := value.Decode(&suites); err != nil {
		return nil, err
	}
	return suites, nil
}
