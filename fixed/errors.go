package fixed

import "github.com/zeebo/errs"

// Error is the class for errors from this package.
var Error = errs.Class("fixed")

// RangeError is returned when a schema or magnitude violates the fixed
// point invariants.
var RangeError = errs.Class("range")
