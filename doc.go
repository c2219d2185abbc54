// Package passwordvalidator validates candidate passwords against a
// configurable set of rules and reports every violated rule, not just the
// first one found.
//
// The rule engine lives in pkg/validator; this package exposes the two entry
// points most callers need. ValidatePassword checks a bare string:
//
//	err := passwordvalidator.ValidatePassword(input, cfg)
//
// Validate integrates with a form or changeset system through the minimal
// Record interface, attaching one error per finding together with the rule
// name and symbolic error kind as metadata:
//
//	cs := passwordvalidator.NewChangeset(map[string]string{"password": input})
//	err := passwordvalidator.Validate(cs, "password", cfg)
//
// Policy configuration can be loaded from YAML files or PASSWORD_*
// environment variables with pkg/policy.
package passwordvalidator
