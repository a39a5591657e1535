// Package userflow is the sample "user" validation flow built from the
// validator combinators.
//
// Email and password checks are fail-fast sequences so a user sees only the
// first problem with each field, while the flow as a whole is a composite so
// every field is reported at once. The username check suspends on a
// Directory lookup, which runs concurrently with the other branches.
//
//	flow := userflow.New(userflow.NewStaticDirectory(0, "admin"))
//	res, err := flow.Validate(ctx, payload.Map{"email": "a@b.co"})
package userflow
