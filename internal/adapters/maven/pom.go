package maven

import (
	"encoding/xml"
	"strings"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

// pomProject is the subset of a Maven POM needed to read direct
// dependencies. Dependency management and full parent resolution are out
// of scope; versions must be literal or resolvable from the POM's own
// properties.
type pomProject struct {
	XMLName      xml.Name        `xml:"project"`
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Parent       *pomParent      `xml:"parent"`
	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string         `xml:"groupId"`
	ArtifactID string         `xml:"artifactId"`
	Version    string         `xml:"version"`
	Classifier string         `xml:"classifier"`
	Scope      string         `xml:"scope"`
	Optional   string         `xml:"optional"`
	Exclusions []pomExclusion `xml:"exclusions>exclusion"`
}

type pomExclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// pomProperties decodes the free-form properties element into a map.
type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = make(map[string]string)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &el); err != nil {
				return err
			}
			(*p)[el.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}

func parsePom(data []byte) (*pomProject, error) {
	var project pomProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return nil, zerr.Wrap(err, "failed to parse pom")
	}
	return &project, nil
}

// groupId and version may be inherited from the parent element.
func (p *pomProject) effectiveGroupID() string {
	if p.GroupID != "" {
		return p.GroupID
	}
	if p.Parent != nil {
		return p.Parent.GroupID
	}
	return ""
}

func (p *pomProject) effectiveVersion() string {
	if p.Version != "" {
		return p.Version
	}
	if p.Parent != nil {
		return p.Parent.Version
	}
	return ""
}

// interpolate resolves ${...} references against the POM's properties and
// the built-in project.* values. Unresolvable references yield "".
func (p *pomProject) interpolate(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	name := strings.TrimSuffix(strings.TrimPrefix(s, "${"), "}")
	switch name {
	case "project.version", "version":
		return p.effectiveVersion()
	case "project.groupId", "groupId":
		return p.effectiveGroupID()
	}
	if v, ok := p.Properties[name]; ok {
		return p.interpolate(v)
	}
	return ""
}

// deps extracts the POM's direct dependencies as resolver deps. Only
// compile and runtime scopes participate in expansion; optional
// dependencies are skipped, as are dependencies whose version cannot be
// resolved from this POM alone.
func (p *pomProject) deps() []domain.Dep {
	var out []domain.Dep
	for _, d := range p.Dependencies {
		if d.Optional == "true" {
			continue
		}
		switch d.Scope {
		case "", "compile", "runtime":
		default:
			continue
		}
		version := p.interpolate(d.Version)
		if version == "" {
			continue
		}
		group := p.interpolate(d.GroupID)
		artifact := p.interpolate(d.ArtifactID)
		if group == "" || artifact == "" {
			continue
		}

		name := group + "/" + artifact
		if d.Classifier != "" {
			name += "$" + d.Classifier
		}
		lib, err := domain.ParseLib(name)
		if err != nil {
			continue
		}

		coord := &domain.Coord{Procurer: domain.ProcurerMvn, Version: version}
		for _, excl := range d.Exclusions {
			if excl.GroupID == "" || excl.ArtifactID == "" {
				continue
			}
			if exclLib, err := domain.ParseLib(excl.GroupID + "/" + excl.ArtifactID); err == nil {
				coord.Exclusions = append(coord.Exclusions, exclLib)
			}
		}
		out = append(out, domain.Dep{Lib: lib, Coord: coord})
	}
	return out
}
