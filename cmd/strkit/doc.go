// Command strkit exposes the sanitizer, similarity, strutil and validator
// packages on the command line.
//
//	strkit sanitize '<img src=x onerror=alert(1)>'
//	echo '<b>hi</b><script>x</script>' | strkit sanitize --policy ugc
//	strkit similarity World word --explain
//	strkit password --length 16 --no-ambiguous
//	strkit uuid5 example.com --namespace url
//	strkit uuid validate 886313e1-3b8a-5372-9b90-0c9aee199e5d
//	strkit age 2001-02-03 --min 18
//
// Defaults come from STRKIT_* environment variables, optionally read from a
// file given with --env-file. Results go to stdout; logs go to stderr.
package main
