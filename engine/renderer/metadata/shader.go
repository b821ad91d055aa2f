package metadata

import "fmt"

// Uniform names form the fixed contract between the scene systems and the
// shader program. They must match the declarations in the GLSL sources.
const (
	UniformModel             = "model"
	UniformView              = "view"
	UniformProjection        = "projection"
	UniformViewPosition      = "viewPosition"
	UniformObjectColor       = "objectColor"
	UniformObjectTexture     = "objectTexture"
	UniformUseTexture        = "bUseTexture"
	UniformUseLighting       = "bUseLighting"
	UniformUVScale           = "UVscale"
	UniformMaterialDiffuse   = "material.diffuseColor"
	UniformMaterialSpecular  = "material.specularColor"
	UniformMaterialShininess = "material.shininess"
)

// UniformDirectionalLight returns the uniform name for a member of the
// directional light struct, e.g. "directionalLight.ambient".
func UniformDirectionalLight(member string) string {
	return "directionalLight." + member
}

// UniformPointLight returns the uniform name for a member of the point light
// array, e.g. "pointLights[0].diffuse".
func UniformPointLight(index int, member string) string {
	return fmt.Sprintf("pointLights[%d].%s", index, member)
}
