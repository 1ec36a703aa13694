// Package clusterspec encodes the peer list TensorFlow servers use to find
// each other.
//
// The wire format lists every job with its replica addresses in ordinal
// order:
//
//	worker|tf-worker-0...:2222;tf-worker-1...:2222,ps|tf-ps-0...:2222
//
// Jobs are separated by ",", a job name is separated from its addresses by
// "|" and addresses are separated by ";". Nothing is escaped; hostnames and
// ports never contain the separators.
package clusterspec
