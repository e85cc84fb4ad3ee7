package decimal

import "github.com/zeebo/errs"

// Error is the class for errors from this package.
var Error = errs.Class("decimal")
