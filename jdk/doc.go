// Package jdk resolves the executables of the wrapped JDK tools.
//
// Executable is a pure function over the target platform, so resolution
// stays testable without environment mocking. Resolve layers the
// config override, JAVA_HOME, and finally PATH lookup on top of it.
package jdk
