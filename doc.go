/*
Package dynarray is the root of a small module around a mutable dynamic array.

Package vector holds the container itself: a contiguous, growable buffer of float64
values with explicit control over capacity, copy and move semantics, and forward
iterators. Package script runs YAML-scripted scenarios against vectors, and command
vecsmoke makes these scenarios available from the command line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dynarray
