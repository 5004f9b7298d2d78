// Package hash provides the CRC32-Castagnoli checksum attached to blobs
// uploaded to S3.
//
//	checksum := hash.CRC32C(data)
package hash
