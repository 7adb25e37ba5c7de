// Package listing reads the audio file inventories that matching
// runs against.
//
// The usual input is a saved `ls -l` listing of the podcast share;
// Lister pulls the file path out of each row and unescapes it:
//
//	lister := listing.NewLister("/mnt/user/", ".mp3")
//	entries, err := lister.Load("files1.txt")
//
// A directory can be scanned directly instead with ScanDir. Both
// produce Entry values carrying the filename used for matching and
// the full path used for renaming.
//
// The package also handles plain list files (one name per line) for
// the episode order map, including reversing exports that arrive in
// newest-first order.
package listing
