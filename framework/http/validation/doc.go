// Package validation checks request input with pipe-separated rule strings.
//
//	v := validation.Make(map[string]string{
//	    "id":   routing.Param(r, "id"),
//	    "keep": r.URL.Query().Get("keep"),
//	}, validation.Rules{
//	    "id":   "required|alpha_dash|max:64",
//	    "keep": "sometimes|in:handle",
//	})
//
//	if v.Fails() {
//	    res.ValidationError(v.Errors()) // 422 {"errors": {"field": ["message"]}}
//	}
//
// Rules:
//   - required   — field must be present and non-empty
//   - sometimes  — skip the remaining rules when the field is empty
//   - max:n      — at most n UTF-8 characters
//   - in:a,b,c   — value must be one of the listed values
//   - alpha_dash — letters, digits, dashes and underscores
//
// Rules run in order and stop at the first failure for a field.
package validation
