// Package tests exercises the deepmap public API end to end, driving
// generated workloads through it the way a consuming service would. The
// package holds no production code.
package tests
