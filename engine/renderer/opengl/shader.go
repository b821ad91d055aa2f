package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
)

// Program implements renderer.ShaderProgram on a compiled and linked GLSL
// program. Uniform locations are cached by name; a uniform the linker
// optimized away resolves to -1 and writes to it are silently ignored by GL.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// NewSceneProgram compiles and links the built-in scene shader.
func NewSceneProgram() (*Program, error) {
	return NewProgram(sceneVertexShaderSource, sceneFragmentShaderSource)
}

func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("failed to link program: %s", infoLog)
	}

	return &Program{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %s", infoLog)
	}

	return shader, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

func (p *Program) Destroy() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		core.LogWarn("shader has no uniform named '%s'", name)
	}
	p.locations[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, value math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &value.Data[0])
}

func (p *Program) SetVec2(name string, value math.Vec2) {
	gl.Uniform2f(p.location(name), value.X, value.Y)
}

func (p *Program) SetVec3(name string, value math.Vec3) {
	gl.Uniform3f(p.location(name), value.X, value.Y, value.Z)
}

func (p *Program) SetVec4(name string, value math.Vec4) {
	gl.Uniform4f(p.location(name), value.X, value.Y, value.Z, value.W)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

func (p *Program) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetSampler(name string, unit int32) {
	gl.Uniform1i(p.location(name), unit)
}

const sceneVertexShaderSource = `#version 410 core
layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec3 inNormal;
layout (location = 2) in vec2 inTexCoord;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main()
{
	fragPosition = vec3(model * vec4(inPosition, 1.0));
	fragNormal = mat3(transpose(inverse(model))) * inNormal;
	fragTexCoord = inTexCoord;

	gl_Position = projection * view * vec4(fragPosition, 1.0);
}
`

const sceneFragmentShaderSource = `#version 410 core
#define TOTAL_POINT_LIGHTS 4

struct Material {
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct DirectionalLight {
	vec3 direction;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

struct PointLight {
	vec3 position;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;

out vec4 outFragColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[TOTAL_POINT_LIGHTS];

vec3 shadeDirectionalLight(DirectionalLight light, vec3 normal, vec3 viewDir, vec3 baseColor)
{
	vec3 lightDir = normalize(-light.direction);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);

	vec3 ambient = light.ambient * baseColor;
	vec3 diffuse = light.diffuse * diff * material.diffuseColor * baseColor;
	vec3 specular = light.specular * spec * material.specularColor;
	return ambient + diffuse + specular;
}

vec3 shadePointLight(PointLight light, vec3 normal, vec3 viewDir, vec3 baseColor)
{
	vec3 lightDir = normalize(light.position - fragPosition);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);

	vec3 ambient = light.ambient * baseColor;
	vec3 diffuse = light.diffuse * diff * material.diffuseColor * baseColor;
	vec3 specular = light.specular * spec * material.specularColor;
	return ambient + diffuse + specular;
}

void main()
{
	vec4 base = bUseTexture
		? texture(objectTexture, fragTexCoord * UVscale)
		: objectColor;

	if (!bUseLighting) {
		outFragColor = base;
		return;
	}

	vec3 normal = normalize(fragNormal);
	vec3 viewDir = normalize(viewPosition - fragPosition);

	vec3 shaded = vec3(0.0);
	if (directionalLight.bActive) {
		shaded += shadeDirectionalLight(directionalLight, normal, viewDir, base.rgb);
	}
	for (int i = 0; i < TOTAL_POINT_LIGHTS; i++) {
		if (pointLights[i].bActive) {
			shaded += shadePointLight(pointLights[i], normal, viewDir, base.rgb);
		}
	}

	outFragColor = vec4(shaded, base.a);
}
`
