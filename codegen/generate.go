package codegen

import (
	"fmt"
	"io"
)

// Artifact identifies one generated file.
type Artifact int

const (
	Definitions Artifact = iota
	ParserDecls
	SaveHEKData
	ReadHEKData
	ReadCacheFileData
	CacheFormat
	CacheDeformat
	RefactorReference
	EnumSupport

	NumArtifacts
)

var artifactNames = [NumArtifacts]string{
	Definitions:       "definition",
	ParserDecls:       "parser",
	SaveHEKData:       "parser-save-hek-data",
	ReadHEKData:       "parser-read-hek-data",
	ReadCacheFileData: "parser-read-cache-file-data",
	CacheFormat:       "parser-cache-format",
	CacheDeformat:     "parser-cache-deformat",
	RefactorReference: "parser-refactor-reference",
	EnumSupport:       "enum",
}

func (a Artifact) String() string {
	if a < 0 || a >= NumArtifacts {
		return fmt.Sprintf("Artifact(%d)", int(a))
	}
	return artifactNames[a]
}

// Files holds the content of every artifact.
type Files [NumArtifacts][]byte

// Sinks receives artifacts. Nil sinks are skipped.
type Sinks [NumArtifacts]io.Writer

// GenerateFiles renders every artifact of the resolved definitions.
func (c *Context) GenerateFiles() (*Files, error) {
	if err := c.resolved(); err != nil {
		return nil, err
	}
	var gfs [NumArtifacts]*goFile
	for a := range NumArtifacts {
		gfs[a] = c.newFile(a)
	}
	c.emitDefinitions(gfs[Definitions])
	c.emitEnumSupport(gfs[EnumSupport])
	for _, r := range c.Order {
		l := c.layouts[r.Name]
		c.emitParserDecls(gfs[ParserDecls], l)
		c.emitSave(gfs[SaveHEKData], l)
		c.emitReadHEK(gfs[ReadHEKData], l)
		c.emitReadCache(gfs[ReadCacheFileData], l)
		c.emitCacheFormat(gfs[CacheFormat], l)
		c.emitCacheDeformat(gfs[CacheDeformat], l)
		c.emitRefactor(gfs[RefactorReference], l)
	}
	files := &Files{}
	for a, gf := range gfs {
		d, err := gf.Bytes()
		if err != nil {
			return nil, err
		}
		files[a] = d
	}
	return files, nil
}

// Generate renders every artifact and only then writes them to sinks.
func (c *Context) Generate(sinks Sinks) error {
	files, err := c.GenerateFiles()
	if err != nil {
		return err
	}
	for a, w := range sinks {
		if w == nil {
			continue
		}
		if _, err := w.Write(files[a]); err != nil {
			return fmt.Errorf("writing %s: %w", Artifact(a), err)
		}
	}
	return nil
}
