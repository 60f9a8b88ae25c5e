// Package harness drives the commands: it decomposes one network file into
// its .out file, and scores a directory of fixtures against a directory of
// candidate outputs, accumulating the result in a score file.
//
// The narrative written to Runner.Out and DecomposeJob.Out is meant for
// people; structured events go to the zap logger.
package harness
