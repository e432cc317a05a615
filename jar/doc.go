// Package jar builds and runs invocations of the jar archiver.
//
// The Builder accumulates typed options in call order around a
// mandatory, mutually exclusive operation mode (create, list, update,
// extract, describe-module, validate, or generate-index). Selecting a
// mode replaces any previously selected one; leaving generate-index
// discards its recorded target archive. File entries and -C
// directory-change markers are kept in a trailing sequence that always
// follows all flags.
//
//	res, err := jar.New().
//	    Create().
//	    ArchiveFile("out.jar").
//	    MainClass("App").
//	    AddFile("App.class").
//	    Run(ctx)
//
// A builder is reusable: each Start or Run re-assembles from the same
// accumulated state and yields an independent process handle.
package jar
