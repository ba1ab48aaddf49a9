// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package build

// Version is the version of this program. It is set at link time with -ldflags "-X ...build.Version=x.y.z".
var Version string = "0.0.0-devel"
