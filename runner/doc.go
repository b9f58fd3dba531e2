// Package runner implements the step driver advancing a model through
// discrete simulation steps.
//
// Each step the Runner invokes the model's scheduler once, executes the
// agent step function for every scheduled id still present, then runs the
// optional model step hook. Cancellation is honored between steps only;
// core operations are simple bounded computations with no suspension
// points inside a step.
//
// A single model is advanced by a single logical thread of control.
// RunBatch adds parallelism across independent models (replicates), never
// within one.
package runner
