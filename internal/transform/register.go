package transform

import "github.com/atomicss/atomicss/internal/value"

// Thunks returns the full set of library functions a tracked
// `@stylexjs/stylex`-shaped import exposes, ready to pass to
// evaluator.FnMap's BindNamespace (for `import * as stylex from '...'`)
// or individually to BindRegular (for named imports like `import {
// create } from '...'`).
func (c *Context) Thunks() map[string]value.Thunk {
	return map[string]value.Thunk{
		"create":         {Name: "create", Invoke: c.Create},
		"defineVars":     {Name: "defineVars", Invoke: c.DefineVars},
		"createTheme":    {Name: "createTheme", Invoke: c.CreateTheme},
		"keyframes":      {Name: "keyframes", Invoke: c.Keyframes},
		"firstThatWorks": {Name: "firstThatWorks", Invoke: c.FirstThatWorks},
		"include":        {Name: "include", Invoke: c.Include},
		"props":          {Name: "props", Invoke: c.Props},
		"attrs":          {Name: "attrs", Invoke: c.Attrs},
	}
}
