/*
go-hardhat resolves the raw output of a hard hat detection model into a clean
list of workers for workplace safety monitoring.

A detector such as YOLO trained on the worker, head_in_hh and head_wout_hh
classes emits many overlapping boxes for the same person and head.  This
package provides the geometry and entity types, while the postprocess
subpackage clusters overlapping worker boxes into one canonical worker, pairs
each worker with at most one head and adjusts the worker confidence based on
whether a hard hat was seen.

See the cmd subdirectory for a CLI and HTTP server built on top of it.
*/
package hardhat
