package viewer

const sceneVertexShader = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform bool planarUV;

out vec2 vertexTexCoord;
out vec3 FragPos;
out vec3 Normal;

void main() {
    gl_Position = projection * view * model * vec4(position, 1.0);

    vertexTexCoord = planarUV ? position.xy + 0.5 : texCoord;

    FragPos = vec3(model * vec4(position, 1.0));
    // Every surface shares the +Z normal hint, oriented by the model matrix.
    Normal = mat3(transpose(inverse(model))) * vec3(0.0, 0.0, 1.0);
}
`

const sceneFragmentShader = `#version 410 core
in vec2 vertexTexCoord;
in vec3 FragPos;
in vec3 Normal;

uniform sampler2D textureSampler;
uniform vec3 lightPos;
uniform vec3 diffuseColor;

out vec4 fragmentColor;

void main() {
    vec3 lightDir = normalize(lightPos - FragPos);
    float diffuseStrength = max(dot(normalize(Normal), lightDir), 0.0);

    vec4 texColor = texture(textureSampler, vertexTexCoord);
    fragmentColor = vec4(texColor.rgb * diffuseColor * diffuseStrength, texColor.a);
}
`
